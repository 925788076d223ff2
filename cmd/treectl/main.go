// Command treectl builds trees from indented outline files and renders
// them as vertical ASCII diagrams.
package main

func main() {
	execute()
}
