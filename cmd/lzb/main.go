// Command lzb compresses or decompresses a single file with no text encoding.
package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/ninter/setools"
	"github.com/ninter/setools/utilities/compression"
	"github.com/urfave/cli/v2"
)

func main() {
	err := newApp(os.Stdout).Run(os.Args)
	if err != nil {
		log.Fatalf("fatal error: %s", err.Error())
	}
}

func newApp(stdout io.Writer) *cli.App {
	return &cli.App{
		Name:      "lzb",
		Usage:     "Compress or decompress a file",
		ArgsUsage: "INPUT_FILE OUTPUT_FILE",
		Writer:    stdout,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "decompress",
				Aliases: []string{"d"},
				Usage:   "decompress INPUT_FILE instead of compressing it",
			},
		},
		Action: run,
	}
}

func run(c *cli.Context) error {
	if c.NArg() != 2 {
		return setools.ErrInvalidArgument.WithMessage(
			fmt.Sprintf("expected INPUT_FILE and OUTPUT_FILE, got %d arguments", c.NArg()))
	}
	sourceFilePath := c.Args().Get(0)
	outputFilePath := c.Args().Get(1)

	sourceFile, err := os.Open(sourceFilePath)
	if err != nil {
		return setools.ErrIOFailed.Wrap(
			fmt.Errorf("failed to open file for reading: `%v`: %w", sourceFilePath, err))
	}
	defer sourceFile.Close()

	outFile, err := os.Create(outputFilePath)
	if err != nil {
		return setools.ErrIOFailed.Wrap(
			fmt.Errorf("failed to open file for writing: `%v`: %w", outputFilePath, err))
	}
	defer outFile.Close()

	var convert func(io.Reader, io.Writer) (int64, error) = compression.CompressStream
	verb := "Compressed"
	if c.Bool("decompress") {
		convert = compression.DecompressStream
		verb = "Decompressed"
	}

	nWritten, err := convert(sourceFile, outFile)
	if err != nil {
		return err
	}

	fmt.Fprintf(c.App.Writer, "%s `%s` to %d bytes.\n", verb, sourceFilePath, nWritten)
	return nil
}
