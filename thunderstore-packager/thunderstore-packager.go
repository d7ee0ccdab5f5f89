// thunderstore-packager assembles a Thunderstore/r2modman package from the
// loader build output.
package main

import "github.com/Smethan/BepInEx.MelonLoader.Loader/cmd/thunderstore-packager/cmd"

func main() {
	cmd.Execute()
}
