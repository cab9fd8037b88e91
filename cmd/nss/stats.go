package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/gocarina/gocsv"
	"github.com/golang/snappy"
	"github.com/klauspost/compress/zstd"
	"github.com/ninter/setools"
	"github.com/ninter/setools/utilities/compression"
	"github.com/pierrec/lz4/v4"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

// fileStats is one row of the `stats` report.
type fileStats struct {
	Path           string `csv:"path"`
	OriginalSize   int    `csv:"original_size"`
	CompressedSize int    `csv:"compressed_size"`
	Ratio          string `csv:"ratio"`
	Literals       int    `csv:"literals"`
	BackReferences int    `csv:"back_references"`
	// Sizes produced by general-purpose codecs on the same input, for
	// comparison.
	LZ4Size    int `csv:"lz4_size"`
	SnappySize int `csv:"snappy_size"`
	ZstdSize   int `csv:"zstd_size"`
}

func (p *program) stats(c *cli.Context) error {
	if c.NArg() == 0 {
		return setools.ErrInvalidArgument.WithMessage("expected at least one FILE argument")
	}

	rows := make([]*fileStats, 0, c.NArg())
	for _, path := range c.Args().Slice() {
		data, err := os.ReadFile(path)
		if err != nil {
			return setools.ErrIOFailed.Wrap(err)
		}

		row, err := measure(path, data)
		if err != nil {
			return err
		}
		p.log.WithFields(logrus.Fields{
			"path":            path,
			"original_size":   row.OriginalSize,
			"compressed_size": row.CompressedSize,
		}).Debug("measured file")
		rows = append(rows, row)
	}

	path := c.String("output")
	if path == "" {
		return writeReport(rows, c.App.Writer)
	}

	file, err := os.Create(path)
	if err != nil {
		return setools.ErrIOFailed.Wrap(err)
	}
	return writeAndClose(rows, file)
}

// writeAndClose writes the report and closes the output, reporting either
// failure.
func writeAndClose(rows []*fileStats, output io.WriteCloser) error {
	err := writeReport(rows, output)
	closeErr := output.Close()
	if err != nil {
		return err
	}
	if closeErr != nil {
		return setools.ErrIOFailed.Wrap(closeErr)
	}
	return nil
}

func writeReport(rows []*fileStats, output io.Writer) error {
	err := gocsv.Marshal(&rows, output)
	if err != nil {
		return setools.ErrIOFailed.Wrap(err)
	}
	return nil
}

// measure compresses `data` with every codec and checks that our own output
// decompresses back to the original.
func measure(path string, data []byte) (*fileStats, error) {
	compressed := compression.Compress(data)
	tokens, err := compression.Tokens(compressed)
	if err != nil {
		return nil, err
	}

	decompressed, err := compression.Decompress(compressed)
	if err != nil {
		return nil, err
	}
	if !bytes.Equal(data, decompressed) {
		return nil, setools.ErrCorruptedData.WithMessage(
			fmt.Sprintf("`%s` didn't survive a round trip", path))
	}

	row := &fileStats{
		Path:           path,
		OriginalSize:   len(data),
		CompressedSize: len(compressed),
		Ratio:          "n/a",
		SnappySize:     len(snappy.Encode(nil, data)),
	}
	if len(data) > 0 {
		row.Ratio = fmt.Sprintf("%.3f", float64(len(compressed))/float64(len(data)))
	}
	for _, token := range tokens {
		if token.IsBackReference {
			row.BackReferences++
		} else {
			row.Literals++
		}
	}

	row.LZ4Size, err = lz4Size(data)
	if err != nil {
		return nil, err
	}
	row.ZstdSize, err = zstdSize(data)
	if err != nil {
		return nil, err
	}
	return row, nil
}

func lz4Size(data []byte) (int, error) {
	var buffer bytes.Buffer
	writer := lz4.NewWriter(&buffer)
	_, err := writer.Write(data)
	if err != nil {
		return 0, setools.ErrIOFailed.Wrap(err)
	}
	err = writer.Close()
	if err != nil {
		return 0, setools.ErrIOFailed.Wrap(err)
	}
	return buffer.Len(), nil
}

func zstdSize(data []byte) (int, error) {
	encoder, err := zstd.NewWriter(nil)
	if err != nil {
		return 0, setools.ErrIOFailed.Wrap(err)
	}
	defer encoder.Close()
	return len(encoder.EncodeAll(data, nil)), nil
}
