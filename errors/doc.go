/*
Package errors implements coded errors for the whole repository.

Each returned error is built on top of one of the registered root errors,
so a caller can classify a failure with the root's Is method without ever
matching on a message string. Extensions register their own root errors
with codes above 1000.
*/
package errors
