// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the pdf2png CLI.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/pdf2png/internal/convert"
	"github.com/pdiddy/pdf2png/internal/raster"
	"github.com/pdiddy/pdf2png/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

const usageLine = "Usage: pdf2png [input pdf] [output dir]"

const (
	exitOK      = 0
	exitUsage   = 1
	exitFailure = 2
)

// newRasterizer is swapped out by tests.
var newRasterizer = raster.New

// UsageError reports a malformed invocation.
type UsageError struct {
	Err error
}

func (e *UsageError) Error() string { return e.Err.Error() }
func (e *UsageError) Unwrap() error { return e.Err }

// configError reports an unusable configuration value.
type configError struct {
	err error
}

func (e *configError) Error() string { return e.err.Error() }
func (e *configError) Unwrap() error { return e.err }

// rootCmd converts a PDF into page_<N>.png files.
var rootCmd = &cobra.Command{
	Use:   "pdf2png [input pdf] [output dir]",
	Short: "Convert each page of a PDF into a size-bounded PNG image",
	Long: `pdf2png renders every page of a PDF at 200 DPI, scales down any page
whose width or height exceeds --max-dim while keeping its aspect ratio,
and writes page_1.png, page_2.png, ... into an existing output directory.`,
	Args: func(cmd *cobra.Command, args []string) error {
		if printCfg, _ := cmd.Flags().GetBool("print-config"); printCfg && len(args) == 0 {
			return nil
		}
		if len(args) != 2 {
			return &UsageError{Err: fmt.Errorf("expected 2 arguments, got %d", len(args))}
		}
		return nil
	},
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runConvert,
}

func init() {
	cobra.OnInitialize(initConfig)

	// The root command only ever takes an input PDF and an output directory,
	// so no positional argument may be claimed by a subcommand.
	rootCmd.Version = version
	rootCmd.SetVersionTemplate("pdf2png {{.Version}}\n")
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SetHelpCommand(&cobra.Command{Hidden: true})

	rootCmd.Flags().Bool("print-config", false, "print the effective configuration as YAML and exit")
	rootCmd.PersistentFlags().String("config", "", "config file (default: ./pdf2png.yaml or ~/.config/pdf2png/pdf2png.yaml)")
	rootCmd.PersistentFlags().Int("max-dim", types.DefaultMaxDim, "maximum width or height of an output image in pixels")
	rootCmd.PersistentFlags().String("backend", string(types.BackendFitz), "rasterizer backend: fitz or pdftoppm")
	rootCmd.PersistentFlags().String("filter", string(types.FilterBilinear), "resampling filter: nearest, bilinear, catmull-rom, or lanczos3")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "log diagnostic detail to stderr")

	bindFlags()

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &UsageError{Err: err}
	})
}

// bindFlags maps persistent flags onto viper keys.
func bindFlags() {
	_ = viper.BindPFlag("max_dim", rootCmd.PersistentFlags().Lookup("max-dim"))
	_ = viper.BindPFlag("backend", rootCmd.PersistentFlags().Lookup("backend"))
	_ = viper.BindPFlag("filter", rootCmd.PersistentFlags().Lookup("filter"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("pdf2png")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "pdf2png"))
		}
	}

	viper.SetEnvPrefix("PDF2PNG")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// conversionConfig assembles the effective configuration from flags,
// environment, and config file, in viper's precedence order.
func conversionConfig() types.ConversionConfig {
	return types.ConversionConfig{
		MaxDim:  viper.GetInt("max_dim"),
		Backend: types.Backend(viper.GetString("backend")),
		Filter:  types.Filter(viper.GetString("filter")),
	}
}

func newLogger(w io.Writer) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(w)
	log.SetLevel(logrus.InfoLevel)
	if viper.GetBool("verbose") {
		log.SetLevel(logrus.DebugLevel)
	}
	return log
}

func runConvert(cmd *cobra.Command, args []string) error {
	if printCfg, _ := cmd.Flags().GetBool("print-config"); printCfg && len(args) == 0 {
		return printConfig(cmd.OutOrStdout())
	}

	pdfPath, outputDir := args[0], args[1]
	cfg := conversionConfig()
	log := newLogger(cmd.ErrOrStderr())

	r, err := newRasterizer(cfg.Backend)
	if err != nil {
		return &configError{err: err}
	}
	log.WithFields(logrus.Fields{
		"backend": r.Name(),
		"max_dim": cfg.MaxDim,
		"filter":  cfg.Filter,
	}).Debug("starting conversion")

	_, err = convert.New(r, cfg, cmd.OutOrStdout(), log).Convert(pdfPath, outputDir)
	if errors.Is(err, convert.ErrInvalidMaxDim) || errors.Is(err, convert.ErrInvalidFilter) {
		return &configError{err: err}
	}
	return err
}

// exitCode reports err to the user and maps it to a process exit status.
func exitCode(err error, stdout, stderr io.Writer) int {
	if err == nil {
		return exitOK
	}

	var ue *UsageError
	if errors.As(err, &ue) {
		fmt.Fprintln(stdout, usageLine)
		return exitUsage
	}

	fmt.Fprintln(stderr, err)
	var ce *configError
	if errors.As(err, &ce) {
		return exitUsage
	}
	return exitFailure
}

func execute(args []string, stdout, stderr io.Writer) int {
	// cobra falls back to os.Args when given nil.
	if args == nil {
		args = []string{}
	}
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	return exitCode(rootCmd.Execute(), stdout, stderr)
}

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}
