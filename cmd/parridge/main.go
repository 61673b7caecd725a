// Command parridge trains and evaluates a ridge regression model over
// partitioned CSV data, by parallel gradient descent or by solving the
// regularized normal equations.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
