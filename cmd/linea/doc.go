// Command linea calls a running linea server from the shell.
//
// Usage:
//
//	linea [-server URL] [-timeout D] <tool> key=value ...
//	linea services
//	linea health
//
// Tool names may omit the "vector." prefix. Values are JSON literals, so
// vectors are written as arrays:
//
//	linea dot v='[1,2,3]' w='[4,5,6]'
//	linea angle v='[1,0]' w='[0,1]' degrees=true
//
// The result is printed as JSON. The exit status is 1 when the tool
// reports a failure and 2 on usage errors.
package main
