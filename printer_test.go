package ecli_test

import (
	"path/filepath"
	"testing"

	"github.com/ecli-go/ecli"
	"github.com/ecli-go/ecli/printers"
	"github.com/ecli-go/ecli/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPrinter(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		cfg     ecli.PrinterConfig
		want    any
		wantErr bool
	}{
		{name: "color by default", cfg: ecli.PrinterConfig{}, want: &printers.ColorPrinter{}},
		{name: "plain", cfg: ecli.PrinterConfig{NoColor: true}, want: &printers.PlainPrinter{}},
		{name: "json", cfg: ecli.PrinterConfig{OutputJSON: true, PrettyJSON: true}, want: &printers.JSONPrinter{}},
		{name: "pretty without json", cfg: ecli.PrinterConfig{PrettyJSON: true}, wantErr: true},
		{
			name: "csv",
			cfg:  ecli.PrinterConfig{OutputCSVPath: filepath.Join(dir, "report.csv"), ShowUnset: true},
			want: &printers.CSVPrinter{},
		},
		{
			name: "database",
			cfg:  ecli.PrinterConfig{OutputDBPath: filepath.Join(dir, "report.db"), Program: "hello"},
			want: &printers.DatabasePrinter{},
		},
		{
			name: "json wins over files",
			cfg:  ecli.PrinterConfig{OutputJSON: true, OutputCSVPath: filepath.Join(dir, "unused.csv")},
			want: &printers.JSONPrinter{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := ecli.NewPrinter(tt.cfg)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, p)
				return
			}

			require.NoError(t, err)
			assert.IsType(t, tt.want, p)
			p.Shutdown(&report.Report{})
		})
	}
}
