package domain

const (
	// NamespaceOfficial is the distribution's original symbol namespace.
	NamespaceOfficial = "official"

	// NamespaceSRG is the stable intermediate namespace the patch set is
	// authored against.
	NamespaceSRG = "srg"
)
