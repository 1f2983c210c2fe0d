/*
Package app assembles handlers into a runnable unit: a path based
router, a decorator chain to wrap it with shared middleware, a
serializing dispatcher for whole operation atomicity, and genesis
initialization helpers.
*/
package app
