// tiempos - Benchmark Time Report
//
// tiempos reads the Smith-Waterman benchmark log, averages the Sequential,
// OpenMP and CUDA run times and draws them as a bar chart.
package main

import (
	"os"

	"github.com/ccollicutt/tiempos/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
