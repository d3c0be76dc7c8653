package wordlist

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/guiguan/caster"
)

// DefaultBatchSize is the number of words broadcast at once while loading.
const DefaultBatchSize = 512

// ErrNotRegular is returned when trying to load something other than a
// regular file.
var ErrNotRegular = errors.New("wordlist: not a regular file")

// ErrLoadAborted is returned if loading stopped before the end of the file.
var ErrLoadAborted = errors.New("wordlist: loading aborted")

// batch is a message broadcast by the loading goroutine.
type batch struct {
	words []string
	last  bool  // no more batches will follow
	err   error // I/O error, set for the last batch only
}

// wordFile represents an OS file which will be loaded as a word list.
type wordFile struct {
	path string         // file name
	info os.FileInfo    // result from Stat(path)
	file *os.File       // file handle
	cast *caster.Caster // broadcaster for async loading
}

// Load reads a text file containing a word on each line and returns the
// words in file order. Surrounding white space is stripped from every line
// and empty lines are skipped.
//
// Lines are read asynchronously. Loading is aborted when ctx is done, in
// which case Load returns ctx.Err().
func Load(ctx context.Context, name string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	wf, err := openFile(ctx, name)
	if err != nil {
		return nil, err
	}
	defer wf.close()
	sub, ok := wf.cast.Sub(ctx, 4)
	if !ok {
		return nil, fmt.Errorf("%w: cannot subscribe to loader of %s", ErrLoadAborted, name)
	}
	go wf.readBatches(DefaultBatchSize)
	var words []string
	for msg := range sub {
		b := msg.(batch)
		words = append(words, b.words...)
		if b.last {
			if b.err != nil {
				return nil, fmt.Errorf("loading %s: %w", name, b.err)
			}
			tracer().Infof("wordlist: loaded %d words from %s", len(words), name)
			return words, nil
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return nil, fmt.Errorf("%w: %s", ErrLoadAborted, name)
}

// openFile opens an OS file and collect some useful information on it,
// checking for error conditions.
func openFile(ctx context.Context, name string) (*wordFile, error) {
	fi, err := os.Stat(name)
	if err != nil {
		return nil, err
	} else if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s", ErrNotRegular, name)
	}
	file, err := os.Open(name) // just open for read access
	if err != nil {
		return nil, err
	}
	wf := &wordFile{
		path: name,
		info: fi,
		file: file,
		cast: caster.New(ctx), // we will broadcast batches of words as they are read
	}
	return wf, nil
}

func (wf *wordFile) close() {
	wf.cast.Close()
	if err := wf.file.Close(); err != nil {
		tracer().Errorf("wordlist: closing %s: %v", wf.path, err)
	}
}

// readBatches scans wf line by line and publishes words in batches of
// size n. It stops early if the broadcaster has been closed.
func (wf *wordFile) readBatches(n int) {
	tracer().Debugf("wordlist: start loading %s (%d bytes)", wf.path, wf.info.Size())
	scanner := bufio.NewScanner(wf.file)
	words := make([]string, 0, n)
	for scanner.Scan() {
		w := strings.TrimSpace(scanner.Text())
		if w == "" {
			continue
		}
		words = append(words, w)
		if len(words) == n {
			if !wf.cast.Pub(batch{words: words}) {
				return // subscriber gone
			}
			words = make([]string, 0, n)
		}
	}
	wf.cast.Pub(batch{words: words, last: true, err: scanner.Err()})
}
