//go:build !sdfdebug

package distfield

const checkInvariants = false
