package catalog

// Example describes one scaffoldable example project in the hub.
type Example struct {
	Key         string
	DisplayName string
	Description string
	Category    string
	Features    []string
}

// examples is the compiled-in example catalog, in display order.
// Keys are kebab-case and must stay unique: the index map built in init
// would silently drop an earlier entry on a duplicate key.
var examples = []Example{
	{
		Key:         "encrypted-counter",
		DisplayName: "Encrypted Counter",
		Description: "A counter whose value lives on-chain as an encrypted handle, incremented without ever revealing it.",
		Category:    "basic-operations",
		Features: []string{
			"Encrypted euint32 state variable",
			"Homomorphic increment with FHE.add",
			"Per-caller read permission via FHE.allow",
		},
	},
	{
		Key:         "add-two-values",
		DisplayName: "Add Two Values",
		Description: "Adds two encrypted inputs and stores the encrypted sum.",
		Category:    "basic-operations",
		Features: []string{
			"Two external encrypted inputs in one call",
			"FHE.add over freshly imported handles",
			"Result handle published to the caller",
		},
	},
	{
		Key:         "equality-check",
		DisplayName: "Equality Check",
		Description: "Compares two encrypted values and stores an encrypted boolean result.",
		Category:    "basic-operations",
		Features: []string{
			"Encrypted comparison with FHE.eq",
			"ebool result type",
			"Branch-free encrypted logic",
		},
	},
	{
		Key:         "encrypt-single-value",
		DisplayName: "Encrypt Single Value",
		Description: "Shows how a client encrypts one value off-chain and submits it with its input proof.",
		Category:    "encryption",
		Features: []string{
			"externalEuint32 input with proof",
			"FHE.fromExternal import",
			"Input proof verification by the coprocessor",
		},
	},
	{
		Key:         "encrypt-multiple-values",
		DisplayName: "Encrypt Multiple Values",
		Description: "Packs several encrypted inputs into a single proof and imports them together.",
		Category:    "encryption",
		Features: []string{
			"Multiple handles sharing one input proof",
			"Ordered FHE.fromExternal imports",
			"Mixed encrypted integer widths",
		},
	},
	{
		Key:         "user-decryption",
		DisplayName: "User Decryption",
		Description: "Grants a single user the right to decrypt a ciphertext through the relayer.",
		Category:    "decryption",
		Features: []string{
			"FHE.allow for a specific address",
			"Relayer-mediated user decryption",
			"Handle re-authorization after updates",
		},
	},
	{
		Key:         "public-decryption",
		DisplayName: "Public Decryption",
		Description: "Requests a public decryption through the oracle and stores the revealed plaintext.",
		Category:    "decryption",
		Features: []string{
			"FHE.makePubliclyDecryptable",
			"Asynchronous oracle callback",
			"Plaintext settlement after reveal",
		},
	},
	{
		Key:         "access-control-basics",
		DisplayName: "Access Control Basics",
		Description: "Walks through persistent and transient permissions on encrypted handles.",
		Category:    "access-control",
		Features: []string{
			"FHE.allowThis for contract self-access",
			"FHE.allowTransient for single-transaction grants",
			"Permission checks with FHE.isSenderAllowed",
		},
	},
	{
		Key:         "sealed-bid-auction",
		DisplayName: "Sealed Bid Auction",
		Description: "A blind auction where bids stay encrypted until the auction settles.",
		Category:    "advanced",
		Features: []string{
			"Encrypted bid storage per bidder",
			"Homomorphic max with FHE.select",
			"Winner reveal through public decryption",
		},
	},
	{
		Key:         "confidential-inventory",
		DisplayName: "Confidential Inventory",
		Description: "A stock manager with role-gated encrypted stock levels and an order lifecycle.",
		Category:    "advanced",
		Features: []string{
			"Role-gated writes to encrypted stock",
			"Encrypted stock arithmetic on order placement",
			"Order lifecycle with encrypted quantities",
		},
	},
}

var exampleIndex = make(map[string]Example)

func init() {
	for _, e := range examples {
		exampleIndex[e.Key] = e
	}
}

// Examples returns the example catalog in declaration order.
func Examples() []Example {
	return examples
}

// ExampleByKey looks up one example by its kebab-case key.
func ExampleByKey(key string) (Example, bool) {
	e, ok := exampleIndex[key]
	return e, ok
}

// ExampleKeys returns every example key in declaration order.
func ExampleKeys() []string {
	keys := make([]string, 0, len(examples))
	for _, e := range examples {
		keys = append(keys, e.Key)
	}
	return keys
}
