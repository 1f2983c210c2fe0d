/*
Package escrow implements a two party conditional payment with third
party arbitration.

A sender opens an agreement naming a receiver and a fixed amount, then
funds it with exactly that amount. Once funded, the sender can release
the funds to the receiver or cancel and reclaim them. A single
arbitrator, fixed when the routes are wired, can force disbursement of
a funded agreement to a recipient of their choosing.

Agreements are an append only audit trail: ids count up from zero and
are never reused, and an agreement that reached Released or Cancelled
stays readable forever.
*/
package escrow
