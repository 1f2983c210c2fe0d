/*
Package keeptest provides lightweight doubles for writing unit tests:
random identities, an in place transaction wrapper and a canned
authenticator. Use it together with store.MemStore to test a handler
without standing up the full application.
*/
package keeptest
