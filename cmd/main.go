package main

import "github.com/m04kA/SMC-RestaurantService/internal/cli"

func main() {
	cli.Execute()
}
