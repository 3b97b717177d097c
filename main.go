package main

import a11yscan "github.com/a11yscan/a11yscan/cmd/a11yscan"

func main() {
	a11yscan.Execute()
}
