/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package main

import "github.com/prowe/fishtrack/cmd"

func main() {
	cmd.Execute()
}
