/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package main

import "github.com/HSJose/CHD-11720/cmd"

func main() {
	cmd.Execute()
}
