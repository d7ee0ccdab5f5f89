// icon-maker generates the 256x256 PNG icon required by Thunderstore packages.
package main

import "github.com/Smethan/BepInEx.MelonLoader.Loader/cmd/icon-maker/cmd"

func main() {
	cmd.Execute()
}
