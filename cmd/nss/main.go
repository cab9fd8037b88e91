package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/ninter/setools"
	"github.com/ninter/setools/utilities/compression"
	"github.com/ninter/setools/utilities/textcodec"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/urfave/cli/v2"
)

const version = "1.1.0"

// program holds what every command needs once the global flags are parsed.
type program struct {
	config  *viper.Viper
	log     *logrus.Logger
	logFile io.Closer
}

func main() {
	err := newApp(os.Stdin, os.Stdout, os.Stderr).Run(os.Args)
	if err != nil {
		log.Fatalf("fatal error: %s", err.Error())
	}
}

func newApp(stdin io.Reader, stdout, stderr io.Writer) *cli.App {
	p := &program{}

	return &cli.App{
		Name:      "nss",
		Usage:     "Encode data as text, optionally compressing it first",
		Version:   version,
		Reader:    stdin,
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "read defaults from this config file",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "override the configured log level",
			},
		},
		Before: func(c *cli.Context) error {
			return p.setUp(c, stderr)
		},
		After: func(c *cli.Context) error {
			if p.logFile != nil {
				return p.logFile.Close()
			}
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:      "encode",
				Aliases:   []string{"e"},
				Usage:     "Encode INPUT as text",
				ArgsUsage: "INPUT",
				Flags:     codecFlags(),
				Action:    p.encode,
			},
			{
				Name:      "decode",
				Aliases:   []string{"d"},
				Usage:     "Decode text back into the original data",
				ArgsUsage: "INPUT",
				Flags:     codecFlags(),
				Action:    p.decode,
			},
			{
				Name:      "stats",
				Usage:     "Write a CSV report on how well each file compresses",
				ArgsUsage: "FILE...",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "write the report to this file instead of standard output",
					},
				},
				Action: p.stats,
			},
		},
	}
}

func (p *program) setUp(c *cli.Context, stderr io.Writer) error {
	config, err := loadConfig(c.String("config"))
	if err != nil {
		return err
	}
	if c.IsSet("log-level") {
		config.Set("log_level", c.String("log-level"))
	}

	logger, logFile, err := newLogger(config, stderr)
	if err != nil {
		return err
	}

	p.config = config
	p.log = logger
	p.logFile = logFile
	return nil
}

// selectCodec picks the text codec from the command's flags, falling back to
// the configured default.
func (p *program) selectCodec(c *cli.Context) (textcodec.Codec, error) {
	name := p.config.GetString("codec")
	if c.IsSet("codec") {
		name = c.String("codec")
	}
	if c.Bool("base58") {
		if c.IsSet("codec") && !strings.EqualFold(c.String("codec"), "base58") {
			return nil, setools.ErrInvalidArgument.WithMessage(
				"--base58 conflicts with --codec " + c.String("codec"))
		}
		name = textcodec.Base58.Name()
	}
	return textcodec.Lookup(name)
}

// readInput returns the single INPUT argument, or the contents of the file it
// names if --file was given. A file name of "-" reads standard input.
func readInput(c *cli.Context) ([]byte, error) {
	if c.NArg() != 1 {
		return nil, setools.ErrInvalidArgument.WithMessage(
			fmt.Sprintf("expected exactly one INPUT argument, got %d", c.NArg()))
	}
	input := c.Args().First()
	if !c.Bool("file") {
		return []byte(input), nil
	}

	if input == "-" {
		data, err := io.ReadAll(c.App.Reader)
		if err != nil {
			return nil, setools.ErrIOFailed.Wrap(err)
		}
		return data, nil
	}

	data, err := os.ReadFile(input)
	if err != nil {
		return nil, setools.ErrIOFailed.Wrap(err)
	}
	return data, nil
}

// writeOutput writes data to the --output file if one was given, or standard
// output otherwise.
func writeOutput(c *cli.Context, data []byte) error {
	path := c.String("output")
	if path == "" {
		_, err := c.App.Writer.Write(data)
		if err != nil {
			return setools.ErrIOFailed.Wrap(err)
		}
		return nil
	}

	err := os.WriteFile(path, data, 0644)
	if err != nil {
		return setools.ErrIOFailed.Wrap(err)
	}
	return nil
}

func (p *program) encode(c *cli.Context) error {
	codec, err := p.selectCodec(c)
	if err != nil {
		return err
	}
	data, err := readInput(c)
	if err != nil {
		return err
	}

	fields := logrus.Fields{"codec": codec.Name(), "input_size": len(data)}
	if c.Bool("compress") {
		compressor := compression.NewCompressor(data)
		compressor.Compress()
		data = compressor.Data()
		fields["compressed_size"] = compressor.Size()
	}

	encoded := codec.Encode(data)
	fields["output_size"] = len(encoded)
	p.log.WithFields(fields).Info("encoded input")

	return writeOutput(c, []byte(encoded))
}

func (p *program) decode(c *cli.Context) error {
	codec, err := p.selectCodec(c)
	if err != nil {
		return err
	}
	input, err := readInput(c)
	if err != nil {
		return err
	}

	text := string(input)
	if codec != textcodec.Raw {
		// Text read from a file usually ends with a newline.
		text = strings.TrimSpace(text)
	}

	data, err := codec.Decode(text)
	if err != nil {
		return err
	}

	fields := logrus.Fields{"codec": codec.Name(), "input_size": len(input)}
	if c.Bool("compress") {
		compressor := compression.NewCompressor(data)
		err = compressor.Decompress()
		if err != nil {
			return err
		}
		fields["compressed_size"] = len(data)
		data = compressor.Data()
	}

	fields["output_size"] = len(data)
	p.log.WithFields(fields).Info("decoded input")

	return writeOutput(c, data)
}

// codecFlags returns the flags shared by the encode and decode commands.
func codecFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:    "compress",
			Aliases: []string{"p"},
			Usage:   "compress before encoding, or decompress after decoding",
		},
		&cli.BoolFlag{
			Name:    "file",
			Aliases: []string{"f"},
			Usage:   "treat INPUT as a path to read from instead of literal text",
		},
		&cli.StringFlag{
			Name:    "codec",
			Aliases: []string{"c"},
			Usage: fmt.Sprintf(
				"text encoding to use, one of: %s", strings.Join(textcodec.Names(), ", ")),
		},
		&cli.BoolFlag{
			Name:    "base58",
			Aliases: []string{"E"},
			Usage:   "shorthand for --codec base58",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "write to this file instead of standard output",
		},
	}
}
