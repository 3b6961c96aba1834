//go:build !geokitdebug

package assert

func that(cond bool, msg string) {
	_ = cond
	_ = msg
}
