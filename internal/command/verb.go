package command

// Verb is the backend command a weget invocation targets.
type Verb string

// Verbs with batch handling. Any other verb is forwarded verbatim.
const (
	VerbInstall  Verb = "install"
	VerbUpgrade  Verb = "upgrade"
	VerbDownload Verb = "download"
)

// verbLabels holds the progress label of every batch-capable verb.
var verbLabels = map[Verb]string{
	VerbInstall:  "Installing",
	VerbUpgrade:  "Upgrading",
	VerbDownload: "Downloading",
}

// BatchCapable reports whether v accepts several packages in one weget invocation.
func (v Verb) BatchCapable() bool {
	_, ok := verbLabels[v]
	return ok
}

// Label returns the progress label for v, or the verb itself when it has none.
func (v Verb) Label() string {
	if label, ok := verbLabels[v]; ok {
		return label
	}
	return string(v)
}

func (v Verb) String() string {
	return string(v)
}
