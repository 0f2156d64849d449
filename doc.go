// Package arc implements a [Cache] using the Adaptive Replacement Cache algorithm.
//
// ARC is a self-tuning policy that balances recency and frequency
// by tracking, alongside the resident entries, a bounded history of
// recently evicted keys. Hits in that history move a single target
// parameter towards whichever side would have kept the key resident.
// Most of the behaviour+documentation is derived from the [ARC paper].
//
// Glossary and invariants:
//
//   - Page contains a key along with a potentially valid/"resident" value.
//
//   - T1: recent pages.
//
//     Resident pages seen exactly once since they were last admitted.
//
//   - T2: frequent pages.
//
//     Resident pages seen at least twice. A page never returns from T2 to T1.
//
//   - B1, B2: ghost pages.
//
//     Keys (without values) recently evicted from T1 and T2 respectively.
//
//   - p: the target size of T1.
//
//     Always within [0, capacity]. It is the only learned state.
//
// Operations:
//
//   - Promotion
//
//     A repeat access to a T1 page moves it to the front of T2.
//     A Put of a key remembered by B1 or B2 also lands in T2.
//
//   - Adaptation
//
//     A B1 hit grows p by max(1, |B2|/|B1|); a B2 hit shrinks p by max(1, |B1|/|B2|).
//
//   - Replacement
//
//     When the cache is full, the tail of T1 is demoted to B1 if T1 is larger than p
//     (or exactly p when the triggering key came from B2); otherwise the tail of T2
//     is demoted to B2. Demoted pages drop their value.
//
// Counts and bounds:
//
//   - |T1| + |T2| ≤ capacity.
//
//   - |B1| ≤ capacity and |B2| ≤ capacity.
//
//   - |T1| + |T2| + |B1| + |B2| ≤ 2 * capacity.
//
//     The oldest ghost of the list not in favor is forgotten to keep this bound.
//
//   - A key belongs to at most one of T1, T2, B1, B2.
//
// A capacity of zero is legal: every insertion is declined.
//
// Builds tagged `arc_debug` check the invariants after every [Cache.Put]
// and panic on violation.
//
// [ARC paper]: https://www.usenix.org/conference/fast-03/arc-self-tuning-low-overhead-replacement-cache
package arc
