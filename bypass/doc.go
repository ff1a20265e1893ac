// Package bypass builds walk-transfer bypass links for a transit network.
//
// Every TAP found in the node file gets a pseudo-TAP: a new node numbered from
// a reserved band (901001 upwards by default) and placed a few units off the
// TAP diagonally. Stops connected to a TAP are linked to its pseudo-TAP with a
// pair of TRWALK links, and existing TAP-to-TAP connectors are rewritten to
// join pseudo-TAPs instead.
//
// Output ordering is fixed: pseudo-TAPs ascend with their TAP id, walk links
// ascend by TAP then stop, and direct connectors keep their input order. Two
// runs over the same inputs produce identical files.
package bypass
