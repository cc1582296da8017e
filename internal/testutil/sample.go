package testutil

// SampleBlob returns a small but representative blob: a cpus container
// with two cpu nodes, a memory node, and a __symbols__ table aliasing one
// of the cpus.
func SampleBlob() []byte {
	return NewBuilder().
		Begin("").
		PropString("model", "acme,board-rev-a").
		PropString("compatible", "acme,board", "acme,soc").
		Begin("cpus").
		PropU32("#address-cells", 1).
		PropU32("#size-cells", 0).
		Begin("cpu@0").
		PropString("device_type", "cpu").
		PropU32("reg", 0).
		End().
		Begin("cpu@1").
		PropString("device_type", "cpu").
		PropU32("reg", 1).
		End().
		End().
		Begin("memory@80000000").
		PropString("device_type", "memory").
		PropU32("reg", 0x80000000, 0x10000000).
		End().
		Begin("__symbols__").
		PropString("boot-cpu", "/cpus/cpu@0").
		End().
		End().
		Bytes()
}
