// Command vecbench times vector insertion across element kinds and
// allocators, and replays the reference scenarios of the vec package.
package main

func main() {
	execute()
}
