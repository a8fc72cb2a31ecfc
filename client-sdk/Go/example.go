package main

/*
Example script for the lrucache Go SDK.

Run this after the server has started (default address: http://localhost:8080).
It will:
  1. Perform a health-check.
  2. Create a cache called 'demo' with room for two entries.
  3. Store three entries, reading the first one back in between.
  4. Show that the untouched entry was evicted.
  5. Clean up by deleting the cache.

Usage:
$ go run example.go
*/

import (
	"fmt"

	"lrucache/client-sdk/Go/client"
)

func main() {
	c := client.NewClient("http://localhost:8080")

	// 1. Health check
	ok, err := c.HealthCheck()
	if err != nil {
		panic(err)
	}
	fmt.Println("Health check:", ok)

	// 2. Create cache
	if _, err := c.CreateCache("demo", 2, 1); err != nil {
		panic(err)
	}
	fmt.Println("Created cache: demo")

	// 3. Store entries; reading "a" makes "b" the least recently used
	must(c.Put("demo", "a", 1))
	must(c.Put("demo", "b", 2))
	if v, err := c.Get("demo", "a"); err == nil {
		fmt.Println("Get a:", v)
	}
	must(c.Put("demo", "c", 3))

	// 4. b was evicted
	if _, err := c.Get("demo", "b"); client.IsNotFound(err) {
		fmt.Println("Get b: evicted")
	}
	info, err := c.GetCache("demo")
	if err != nil {
		panic(err)
	}
	fmt.Printf("Cache demo: size=%d hits=%d misses=%d evictions=%d\n",
		info.Size, info.Stats.Hits, info.Stats.Misses, info.Stats.Evictions)

	// 5. Clean up
	must(c.DeleteCache("demo"))
	fmt.Println("Deleted cache: demo")
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}
