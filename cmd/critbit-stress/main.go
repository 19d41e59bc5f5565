// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

// critbit-stress drives a critbit tree through a randomized
// insert/delete loop against a mirror reference set, optionally
// printing the resulting structure. A non-zero exit means the tree and
// the reference disagreed; the failing seed is reported so the run can
// be replayed.
package main

import (
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"time"

	critbit "github.com/absolutelightning/go-critbit"
	"github.com/spf13/cobra"
)

func main() {
	var (
		seed     int64
		ops      int
		keyspace int
		print    bool
	)

	rootCmd := &cobra.Command{
		Use:          "critbit-stress",
		Short:        "Randomized insert/delete stress loop for the critbit tree",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(seed, ops, keyspace, print)
		},
	}
	rootCmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 picks one from the clock)")
	rootCmd.Flags().IntVar(&ops, "ops", 409600, "number of operations to run")
	rootCmd.Flags().IntVar(&keyspace, "keyspace", 4096, "number of distinct hexadecimal keys")
	rootCmd.Flags().BoolVar(&print, "print", false, "dump the final tree structure")

	rootCmd.SetOutput(os.Stdout)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(seed int64, ops, keyspace int, print bool) error {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	counter := &countingAllocator{}
	tree := critbit.NewWithAllocator(counter.alloc, counter.free, nil)
	present := make([]bool, keyspace)

	fail := func(format string, args ...any) error {
		return fmt.Errorf("seed %d: %s", seed, fmt.Sprintf(format, args...))
	}

	for i := 0; i < ops; i++ {
		v := rng.Intn(keyspace)
		key := []byte(strconv.FormatInt(int64(v), 16))
		if present[v] {
			if !tree.Contains(key) {
				return fail("tree should contain %q", key)
			}
			if !tree.Delete(key) {
				return fail("deletion of %q failed", key)
			}
			if tree.Contains(key) {
				return fail("tree should not contain %q after delete", key)
			}
			present[v] = false
		} else {
			if tree.Contains(key) {
				return fail("tree should not contain %q", key)
			}
			if _, err := tree.Insert(key); err != nil {
				return fail("insertion of %q failed: %v", key, err)
			}
			if !tree.Contains(key) {
				return fail("tree should contain %q after insert", key)
			}
			present[v] = true
		}
	}

	if print {
		tree.Dump(os.Stdout)
	}

	resident := tree.Len()
	tree.Clear()
	if counter.outstanding != 0 {
		return fail("%d blocks still outstanding after clear", counter.outstanding)
	}
	fmt.Printf("seed %d: %d ops ok, %d keys resident before clear\n", seed, ops, resident)
	return nil
}

// countingAllocator wraps the default allocator pair to track
// outstanding blocks.
type countingAllocator struct {
	outstanding int
}

func (c *countingAllocator) alloc(keyLen int, baton any) *critbit.Block {
	c.outstanding++
	return critbit.DefaultAlloc(keyLen, baton)
}

func (c *countingAllocator) free(b *critbit.Block, baton any) {
	c.outstanding--
	critbit.DefaultFree(b, baton)
}
