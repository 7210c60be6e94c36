// Package ruuid implements RFC 4122 Universally Unique Identifiers with
// constructors for the five standard versions: time-based (V1), DCE
// security (V2), name-based MD5 (V3), random (V4, including sequential
// SQUUIDs), and name-based SHA-1 (V5).
//
// Basic Usage:
//
//	// Generate a random UUID
//	id, err := ruuid.NewV4()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(id.String())
//
//	// Name-based UUIDs are deterministic
//	id := ruuid.NewV5(ruuid.NamespaceDNS, []byte("www.example.com"))
//
//	// Parse a UUID from string
//	id, err := ruuid.Parse("f47ac10b-58cc-4372-a567-0e02b2c3d479")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Time-based UUIDs:
//
// V1 UUIDs embed a strictly monotonic 60-bit timestamp (100-nanosecond
// ticks since 1582-10-15), a 48-bit node id and a 14-bit clock sequence.
// The node id is taken from the host's first hardware address, or
// generated randomly with the multicast bit set when no address is
// available. Node id and clock sequence are fixed once per process.
//
//	id, err := ruuid.NewV1()
//	fmt.Println(id.Time(), id.ClockSequence())
//
// Custom Generators:
//
// The package-level constructors share one process-wide generator. A
// dedicated Generator makes the dependencies of V1/V2/V4 generation
// explicit and injectable:
//
//	gen := ruuid.NewGeneratorWithReader(myEntropy)
//	id, err := gen.NewV1()
//
// A generator built with NewGeneratorWithStore persists its clock
// sequence and last timestamp, keeping V1 values from successive process
// runs on the same node distinct even across clock rewinds.
//
// Ordering:
//
// Compare orders UUIDs as unsigned 128-bit integers. SQUUIDs (NewSQUUID)
// carry their creation time in the top 32 bits, so they sort roughly by
// creation order at second granularity while remaining valid V4 values.
//
// Thread Safety:
//
// All operations are safe for concurrent use. UUID itself is a value
// type; the only shared state is inside generators.
package ruuid
