/*
Package cash keeps the account balances and moves value between
accounts. It is the ledger collaborator every other extension uses
for its monetary side effects.

A transfer either fully succeeds or fully fails; there is no partial
movement of funds.
*/
package cash
