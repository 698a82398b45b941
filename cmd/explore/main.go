// Command explore serves the ExploreData web UI and its terminal
// counterparts.
package main

import "github.com/JonMunkholm/explore/internal/cli"

func main() {
	cli.Execute()
}
