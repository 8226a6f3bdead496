package textfile

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/guiguan/caster"
	"github.com/npillmayer/avlseq"
)

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Please refer to the License file in the repository root.
*/

// Some constants for batch size defaults, in lines
const (
	smallBatch  = 64
	mediumBatch = 512
	largeBatch  = 4096
	oneMb       = 1048576
	tenMb       = 10 * oneMb
)

// maxLineLength is the longest line Load accepts.
const maxLineLength = oneMb

// batch is a run of consecutive lines, published by the reader goroutine.
type batch struct {
	lines []string
	err   error
}

// textFile represents a OS file which will be loaded as a sequence of lines.
type textFile struct {
	path string         // file name
	info os.FileInfo    // result from Stat(path)
	file *os.File       // file handle
	cast *caster.Caster // broadcaster for async line batches
}

// Load reads a file, which must be a text file, and loads it as a sequence of
// lines. Line terminators are not part of the items.
//
// Clients may indicate a recommended batch size, i.e. the number of lines
// which are read before they are handed over to the sequence. batchSize may
// be 0, letting Load use sensible defaults.
//
// Reading is done by a separate goroutine, which publishes batches of lines
// while Load concatenates them to the resulting sequence. This is transparent
// to the client: Load returns when the whole file has been read.
func Load(name string, batchSize int) (*avlseq.Sequence[string], error) {
	tf, err := openFile(name)
	if err != nil {
		return nil, err
	}
	defer tf.file.Close()
	if batchSize <= 0 {
		switch size := tf.info.Size(); {
		case size < oneMb:
			batchSize = smallBatch
		case size < tenMb:
			batchSize = mediumBatch
		default:
			batchSize = largeBatch
		}
	}
	batches, ok := tf.cast.Sub(context.Background(), 4)
	if !ok {
		return nil, fmt.Errorf("cannot subscribe to loader for %s", name)
	}
	go tf.readLines(batchSize)
	seq := avlseq.New[string]()
	var errs []error
	for msg := range batches {
		b := msg.(batch)
		if b.err != nil {
			errs = append(errs, b.err)
			continue
		}
		seq.Concat(avlseq.FromSlice(b.lines...))
	}
	tracer().Debugf("textfile: loaded %d lines from %s, height %d", seq.Len(), tf.path, seq.Height())
	return seq, errors.Join(errs...)
}

// openFile opens an OS file and collect some useful information on it,
// checking for error conditions.
func openFile(name string) (*textFile, error) {
	fi, err := os.Stat(name)
	if err != nil {
		return nil, err
	} else if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("file is not a regular file: %s", name)
	}
	file, err := os.Open(name) // just open for read access
	if err != nil {
		return nil, err
	}
	tf := &textFile{
		path: name,
		info: fi,
		file: file,
		cast: caster.New(nil), // we will broadcast batches of lines when they are read
	}
	return tf, nil
}

// --- File loading goroutine ------------------------------------------------

// readLines reads the file line by line and publishes batches of at most
// batchSize lines. Closing the broadcaster signals the end of the file.
func (tf *textFile) readLines(batchSize int) {
	defer tf.cast.Close()
	scanner := bufio.NewScanner(tf.file)
	scanner.Buffer(make([]byte, 0, 4096), maxLineLength)
	lines := make([]string, 0, batchSize)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
		if len(lines) == batchSize {
			tf.cast.Pub(batch{lines: lines})
			lines = make([]string, 0, batchSize)
		}
	}
	if len(lines) > 0 {
		tf.cast.Pub(batch{lines: lines})
	}
	if err := scanner.Err(); err != nil {
		tracer().Errorf("textfile: reading %s: %v", tf.path, err)
		tf.cast.Pub(batch{err: fmt.Errorf("error loading text file %s: %w", tf.path, err)})
	}
}
