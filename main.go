package main

import "github.com/iacguard/iacguard/cmd/iacguard"

func main() {
	iacguard.Execute()
}
