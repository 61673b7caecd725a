package dataset

import (
	"bufio"
	"context"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/parridge/parridge/core/parallel"
	"github.com/parridge/parridge/pkg/errors"
)

// ParseRecord parses one CSV line of the form "x1,...,xd,y" where the
// last field is the label. At least one feature and the label are
// required.
func ParseRecord(line string) (Record, error) {
	fields := strings.Split(line, ",")
	if len(fields) < 2 {
		return Record{}, errors.Newf("want at least 2 comma-separated fields, got %d", len(fields))
	}

	x := make([]float64, len(fields)-1)
	for i, field := range fields[:len(fields)-1] {
		v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil {
			return Record{}, errors.Wrapf(err, "field %q", field)
		}
		x[i] = v
	}

	last := fields[len(fields)-1]
	y, err := strconv.ParseFloat(strings.TrimSpace(last), 64)
	if err != nil {
		return Record{}, errors.Wrapf(err, "label field %q", last)
	}

	return Record{X: x, Y: y}, nil
}

// Load reads a CSV file of (x, y) records into a Dataset with
// numPartitions partitions.
func Load(path string, numPartitions int) (*Dataset, error) {
	return LoadWithContext(context.Background(), path, numPartitions)
}

// LoadWithContext reads and parses path in parallel line chunks. Any
// malformed line aborts the whole load with a ParseError carrying the
// 1-based line number; there is no partial recovery.
func LoadWithContext(ctx context.Context, path string, numPartitions int) (*Dataset, error) {
	lines, err := readLines(path)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, errors.Wrapf(errors.ErrEmptyData, "no records in %s", path)
	}

	records := make([]Record, len(lines))
	chunks := runtime.NumCPU()
	if chunks > len(lines) {
		chunks = len(lines)
	}
	chunkSize := (len(lines) + chunks - 1) / chunks

	err = parallel.ForEachPartition(ctx, chunks, func(ctx context.Context, c int) error {
		start := c * chunkSize
		end := start + chunkSize
		if end > len(lines) {
			end = len(lines)
		}
		for i := start; i < end; i++ {
			if err := ctx.Err(); err != nil {
				return err
			}
			rec, err := ParseRecord(lines[i])
			if err != nil {
				return errors.NewParseError(path, i+1, "", err)
			}
			records[i] = rec
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	ds, err := New(records, numPartitions)
	if err != nil {
		// Uniform-dimension violations surface here with the file context.
		return nil, errors.Wrapf(err, "loading %s", path)
	}
	return ds, nil
}

func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening data file")
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading data file")
	}
	return lines, nil
}
