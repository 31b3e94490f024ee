package main

import "github.com/hirestack/applicant-tracking/cmd"

func main() {
	cmd.Execute()
}
