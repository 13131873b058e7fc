package catalog

// Category groups examples under one learning theme.
type Category struct {
	Key         string
	DisplayName string
	Description string
	ExampleKeys []string
	Concepts    []string
}

// categories is the compiled-in category catalog, in display order.
var categories = []Category{
	{
		Key:         "basic-operations",
		DisplayName: "Basic Operations",
		Description: "Arithmetic and comparison on encrypted values, the smallest possible FHEVM contracts.",
		ExampleKeys: []string{"encrypted-counter", "add-two-values", "equality-check"},
		Concepts: []string{
			"Encrypted integer types (euint8 through euint256)",
			"Homomorphic arithmetic with FHE.add and FHE.sub",
			"Encrypted comparison and the ebool type",
			"Granting handle access with FHE.allow",
		},
	},
	{
		Key:         "encryption",
		DisplayName: "Encryption",
		Description: "How client-side encrypted inputs and their proofs reach a contract.",
		ExampleKeys: []string{"encrypt-single-value", "encrypt-multiple-values"},
		Concepts: []string{
			"External encrypted input types",
			"Input proofs and FHE.fromExternal",
			"Packing several inputs into one proof",
		},
	},
	{
		Key:         "decryption",
		DisplayName: "Decryption",
		Description: "Revealing encrypted state to one user or to everyone.",
		ExampleKeys: []string{"user-decryption", "public-decryption"},
		Concepts: []string{
			"User decryption through the relayer",
			"Public decryption through the oracle",
			"Asynchronous decryption callbacks",
		},
	},
	{
		Key:         "access-control",
		DisplayName: "Access Control",
		Description: "Who may compute on or decrypt a ciphertext, and for how long.",
		ExampleKeys: []string{"access-control-basics"},
		Concepts: []string{
			"Persistent permissions with FHE.allow and FHE.allowThis",
			"Transient permissions with FHE.allowTransient",
			"Sender checks with FHE.isSenderAllowed",
		},
	},
	{
		Key:         "advanced",
		DisplayName: "Advanced",
		Description: "Larger contracts that combine encrypted state, roles and multi-step lifecycles.",
		ExampleKeys: []string{"sealed-bid-auction", "confidential-inventory"},
		Concepts: []string{
			"Encrypted selection with FHE.select",
			"Role-gated writes to encrypted state",
			"Multi-transaction reveal flows",
		},
	},
}

var categoryIndex = make(map[string]Category)

func init() {
	for _, c := range categories {
		categoryIndex[c.Key] = c
	}
}

// Categories returns the category catalog in declaration order.
func Categories() []Category {
	return categories
}

// CategoryByKey looks up one category by its kebab-case key.
func CategoryByKey(key string) (Category, bool) {
	c, ok := categoryIndex[key]
	return c, ok
}

// CategoryKeys returns every category key in declaration order.
func CategoryKeys() []string {
	keys := make([]string, 0, len(categories))
	for _, c := range categories {
		keys = append(keys, c.Key)
	}
	return keys
}
