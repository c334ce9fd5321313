package main

import (
	api "Bracketpool"
)

func main() {
	api.Run()
}
