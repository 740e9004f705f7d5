package main

import (
	"os"

	"github.com/cristianoliveira/showreel/cmd"
	"github.com/cristianoliveira/showreel/internal/colors"
)

func main() {
	colors.StructuredInfo("startup", "main", "started", nil, "", nil)
	err := cmd.Execute()
	cmd.Teardown()
	if err != nil {
		cmd.ReportError(err)
		colors.StructuredError("startup", "main", "failed", err, "", nil)
		os.Exit(1)
	}
	colors.StructuredInfo("startup", "main", "completed", nil, "", nil)
}
