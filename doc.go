/*
Package keep defines the common interfaces that tie the escrow registry
together: key-value stores with cache-wrap savepoints, messages and
transactions, handlers and decorators, and the condition/address identity
scheme.

The root package holds only contracts and the simplest shared
implementations. All actual functionality lives in extensions under x/,
wired together through these interfaces.
*/
package keep
