// Command lrudemo exercises a string-keyed, string-valued lru.Cache from
// the command line: it inserts a sequence of key=value arguments in order
// and prints the resulting recency order, from least- to
// most-recently-used.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	lru "github.com/zyedidia/lru-mem"
	"github.com/zyedidia/lru-mem/memsize"
)

func main() {
	maxSize := flag.Int("max-size", 4096, "maximum estimated total size, in bytes, of all entries")
	capacity := flag.Int("capacity", 0, "initial lookup table capacity (0 uses the default)")
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stderr, nil))

	c := buildCache(*maxSize, *capacity)

	for _, arg := range flag.Args() {
		key, value, ok := strings.Cut(arg, "=")
		if !ok {
			log.Warn("skipping malformed argument", "arg", arg, "want", "key=value")
			continue
		}
		if _, err := c.Insert(key, value); err != nil {
			log.Error("insert rejected", "key", key, "err", err)
		}
	}

	it := c.Iter()
	for kv, ok := it.Next(); ok; kv, ok = it.Next() {
		fmt.Printf("%s=%s\n", kv.Key, kv.Val)
	}
}

func buildCache(maxSize, capacity int) *lru.Cache[string, string] {
	if capacity <= 0 {
		return lru.New[string, string](maxSize, memsize.String, memsize.String)
	}
	return lru.WithCapacity[string, string](maxSize, capacity, memsize.String, memsize.String)
}
