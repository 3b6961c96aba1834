//go:build geokitdebug

package assert

func that(cond bool, msg string) {
	if !cond {
		panic("geokit: assertion failed: " + msg)
	}
}
