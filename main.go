package main

import "github.com/ton48099/CaloriTons/cmd/caloritons"

func main() {
	caloritons.Execute()
}
