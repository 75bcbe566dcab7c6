// Package hashtable provides a separately-chained hash table whose buckets
// are intrusive lists (package ilist): entries that hash to the same bucket
// are threaded onto that bucket's list through a Link embedded in the
// entry itself, so insertion allocates nothing.
//
// Overview:
//
//   - The table is generic over the entry type T and the key type K. The
//     caller supplies the hash function and the entry-vs-key match
//     predicate; the table itself never inspects entries.
//   - Hash values are reduced modulo the bucket count, so any uint-valued
//     hash function is acceptable.
//   - Insert is O(1); Search is O(1 + chain length) — a good hash keeps
//     chains short; Remove is O(1) and, like ilist.Remove, needs only the
//     entry's link.
//
// The table does not grow; pick a bucket count proportional to the
// expected population.
//
// Thread safety:
//
//	None. Synchronize externally.
package hashtable
