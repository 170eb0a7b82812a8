package main

import "github.com/ModChain/secp256k1/internal/cli"

func main() {
	cli.Execute()
}
