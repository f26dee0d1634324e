package stanza

type options struct {
	modelsDir string
}

// Option configures a Classifier.
type Option func(*options)

// WithModelsDir sets the directory containing the pipeline artifacts.
// Expects: department_classifier.json, sentiment_classifier.json.
// Default: "models".
func WithModelsDir(dir string) Option {
	return func(o *options) {
		o.modelsDir = dir
	}
}

func defaultOptions() options {
	return options{modelsDir: "models"}
}
