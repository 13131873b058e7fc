package scaffold

import (
	"fmt"
	"strings"

	"fhehub/internal/catalog"
)

// renderContract produces the Solidity source for one example. The leading
// annotation block is consumed later by the generate-docs tool.
func renderContract(ex catalog.Example, name string) string {
	return fmt.Sprintf(`// SPDX-License-Identifier: BSD-3-Clause-Clear
pragma solidity ^0.8.24;

import { FHE, ebool, euint32, externalEuint32 } from "@fhevm/solidity/lib/FHE.sol";
import { SepoliaConfig } from "@fhevm/solidity/config/ZamaConfig.sol";

/**
 * @title %s
 * @category %s
 * @chapter examples
 * @notice %s
 */
contract %s is SepoliaConfig {
    euint32 private _value;

    /**
     * @title Read the encrypted value
     * @category %s
     * @chapter api
     * @notice Returns the current handle without decrypting it.
     */
    function getValue() external view returns (euint32) {
        return _value;
    }

    /**
     * @title Replace the encrypted value
     * @category %s
     * @chapter api
     * @notice Imports an external encrypted input and stores its handle.
     */
    function setValue(externalEuint32 inputValue, bytes calldata inputProof) external {
        _value = FHE.fromExternal(inputValue, inputProof);
        FHE.allowThis(_value);
        FHE.allow(_value, msg.sender);
    }

    /**
     * @title Increment the encrypted value
     * @category %s
     * @chapter api
     * @notice Adds an encrypted delta to the stored value homomorphically.
     */
    function increment(externalEuint32 amount, bytes calldata inputProof) external {
        euint32 delta = FHE.fromExternal(amount, inputProof);
        _value = FHE.add(_value, delta);
        FHE.allowThis(_value);
        FHE.allow(_value, msg.sender);
    }
}
`, ex.DisplayName, ex.Category, ex.Description, name, ex.Category, ex.Category, ex.Category)
}

// renderTest produces the hardhat test referencing the generated contract
// through the typechain factory pattern.
func renderTest(ex catalog.Example, name string) string {
	return fmt.Sprintf(`import { expect } from "chai";
import { ethers, fhevm } from "hardhat";

import { %[1]s, %[1]s__factory } from "../types";

describe("%[1]s", function () {
  let contract: %[1]s;

  beforeEach(async function () {
    const factory = (await ethers.getContractFactory("%[1]s")) as %[1]s__factory;
    contract = (await factory.deploy()) as %[1]s;
    await contract.waitForDeployment();
  });

  /**
   * @category %[2]s
   * @chapter examples
   * @description Deploys %[1]s and checks that the stored handle starts uninitialized.
   */
  it("starts with an uninitialized encrypted value", async function () {
    const value = await contract.getValue();
    expect(value).to.eq(ethers.ZeroHash);
  });

  /**
   * @category %[2]s
   * @chapter examples
   * @description Encrypts an input off-chain, submits it with its proof and reads the handle back.
   */
  it("stores an encrypted input submitted with a proof", async function () {
    const [signer] = await ethers.getSigners();
    const input = fhevm.createEncryptedInput(await contract.getAddress(), signer.address);
    input.add32(42);
    const encrypted = await input.encrypt();

    await contract.setValue(encrypted.handles[0], encrypted.inputProof);
    const value = await contract.getValue();
    expect(value).to.not.eq(ethers.ZeroHash);
  });
});
`, name, ex.Category)
}

// renderHardhatConfig emits the fixed build-tool configuration. The sepolia
// endpoint is assembled from the configured API-key environment variable.
func renderHardhatConfig(apiKeyEnv string) string {
	return fmt.Sprintf(`import "@fhevm/hardhat-plugin";
import "@nomicfoundation/hardhat-toolbox";
import { HardhatUserConfig } from "hardhat/config";

const sepoliaApiKey: string = process.env.%s ?? "";

const config: HardhatUserConfig = {
  solidity: {
    version: "0.8.24",
    settings: {
      optimizer: { enabled: true, runs: 800 },
      evmVersion: "cancun",
    },
  },
  networks: {
    hardhat: {
      chainId: 31337,
    },
    sepolia: {
      chainId: 11155111,
      url: "https://sepolia.infura.io/v3/" + sepoliaApiKey,
    },
  },
  typechain: {
    outDir: "types",
    target: "ethers-v6",
  },
};

export default config;
`, apiKeyEnv)
}

// tsConfig mirrors the tsconfig.json document shape. Field order here is the
// key order of the emitted JSON.
type tsConfig struct {
	CompilerOptions tsCompilerOptions `json:"compilerOptions"`
	Include         []string          `json:"include"`
	Exclude         []string          `json:"exclude"`
}

type tsCompilerOptions struct {
	Target            string `json:"target"`
	Module            string `json:"module"`
	ModuleResolution  string `json:"moduleResolution"`
	EsModuleInterop   bool   `json:"esModuleInterop"`
	Strict            bool   `json:"strict"`
	SkipLibCheck      bool   `json:"skipLibCheck"`
	ResolveJsonModule bool   `json:"resolveJsonModule"`
	Declaration       bool   `json:"declaration"`
	OutDir            string `json:"outDir"`
}

func defaultTSConfig() tsConfig {
	return tsConfig{
		CompilerOptions: tsCompilerOptions{
			Target:            "es2022",
			Module:            "commonjs",
			ModuleResolution:  "node",
			EsModuleInterop:   true,
			Strict:            true,
			SkipLibCheck:      true,
			ResolveJsonModule: true,
			Declaration:       true,
			OutDir:            "dist",
		},
		Include: []string{"contracts", "test", "deploy", "tasks", "types"},
		Exclude: []string{"node_modules", "dist"},
	}
}

// packageManifest mirrors the package.json document shape. Map values are
// emitted with sorted keys, so re-runs stay byte-identical.
type packageManifest struct {
	Name            string            `json:"name"`
	Version         string            `json:"version"`
	Description     string            `json:"description"`
	License         string            `json:"license"`
	Scripts         map[string]string `json:"scripts"`
	DevDependencies map[string]string `json:"devDependencies"`
}

func manifestFor(ex catalog.Example) packageManifest {
	return packageManifest{
		Name:        "fhevm-example-" + ex.Key,
		Version:     "1.0.0",
		Description: ex.Description,
		License:     "BSD-3-Clause-Clear",
		Scripts: map[string]string{
			"compile":   "hardhat compile",
			"test":      "hardhat test",
			"clean":     "hardhat clean",
			"typechain": "hardhat typechain",
		},
		DevDependencies: map[string]string{
			"@fhevm/hardhat-plugin":             "^0.1.0",
			"@fhevm/solidity":                   "^0.7.0",
			"@nomicfoundation/hardhat-toolbox":  "^5.0.0",
			"@types/chai":                       "^4.3.16",
			"@types/mocha":                      "^10.0.7",
			"@types/node":                       "^20.14.0",
			"chai":                              "^4.5.0",
			"ethers":                            "^6.13.0",
			"hardhat":                           "^2.24.0",
			"ts-node":                           "^10.9.2",
			"typescript":                        "^5.6.0",
		},
	}
}

func renderReadme(ex catalog.Example) string {
	var sb strings.Builder
	sb.WriteString("# " + ex.DisplayName + "\n\n")
	sb.WriteString(ex.Description + "\n\n")
	sb.WriteString("## Features\n\n")
	for _, f := range ex.Features {
		sb.WriteString("- " + f + "\n")
	}
	sb.WriteString("\n## Quick start\n\n")
	sb.WriteString("```sh\nnpm install\nnpx hardhat test\n```\n")
	return sb.String()
}
