package cli

import (
	"github.com/spf13/cobra"

	"github.com/aalvaropc/romconv/internal/domain"
)

func bin2hexCmd(opts *rootOptions) *cobra.Command {
	var in, out string

	c := &cobra.Command{
		Use:   "bin2hex",
		Short: "Convert raw 8-bit samples to one two-digit hex value per line",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			job := domain.Job{Name: "bin2hex", Kind: domain.KindBinToHex, Input: in, Output: out}
			return executeJobs(cmd, opts, "", domain.DefaultConfig(), []domain.Job{job})
		},
	}

	c.Flags().StringVarP(&in, "in", "i", domain.DefaultRawInput, "raw binary input file")
	c.Flags().StringVarP(&out, "out", "o", domain.DefaultHexOutput, "hex text output file")
	return c
}

func hex2binCmd(opts *rootOptions) *cobra.Command {
	var in, out string

	c := &cobra.Command{
		Use:   "hex2bin",
		Short: "Convert hex values (one per line) to 16-bit binary strings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			job := domain.Job{Name: "hex2bin", Kind: domain.KindHexToBin, Input: in, Output: out}
			return executeJobs(cmd, opts, "", domain.DefaultConfig(), []domain.Job{job})
		},
	}

	c.Flags().StringVarP(&in, "in", "i", domain.DefaultHexInput, "hex text input file")
	c.Flags().StringVarP(&out, "out", "o", domain.DefaultBinOutput, "binary text output file")
	return c
}
