package cli

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/iyhunko/catalog-transformer/internal/config"
)

const catalogJSON = `{"products":[
	{"id":"00000000-0000-0000-0000-000000000001","name":"some food","category":"Food","price":5.50},
	{"id":"00000000-0000-0000-0000-000000000002","name":"some other food","category":"Food","price":"6.99"},
	{"id":"00000000-0000-0000-0000-000000000003","name":"some clothing","category":"Clothing","price":10.00},
	{"id":"00000000-0000-0000-0000-000000000004","name":"some other clothing","category":"Clothing","price":"15.99"}
]}`

// executeCommand runs rootCmd with args and stdin and returns what was written to stdout.
func executeCommand(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	inputPath, outputPath, discountValue, categoryFilter = "", "", "", ""

	out := new(bytes.Buffer)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetIn(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return out.String(), err
}

// withConfig swaps the command configuration for the duration of a test.
func withConfig(t *testing.T, conf *config.Config) {
	t.Helper()
	original := appConfig
	appConfig = conf
	t.Cleanup(func() { appConfig = original })
}

// withTransformer swaps the catalog transformer for the duration of a test.
func withTransformer(t *testing.T, tr catalogTransformer) {
	t.Helper()
	original := transformer
	transformer = tr
	t.Cleanup(func() { transformer = original })
}
