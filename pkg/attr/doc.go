// Package attr provides reactive value cells ("attributes") that announce
// changes through the signal package. An attribute holds a current value,
// optional get/set transforms, and a changed signal that fires with the new
// and previous values whenever the stored value actually changes.
//
// Setting a value that is equal to the current one (by the attribute's
// equality function, reflect.DeepEqual by default) neither mutates state
// nor fires the changed signal.
//
// Mutable attributes expose a full signal, so any holder can both observe
// and publish:
//
//	counter := attr.NewMutable(0)
//
//	counter.Changed().Connect(func(ch attr.Change[int]) {
//		fmt.Printf("%d -> %d\n", ch.Previous, ch.Value)
//	})
//
//	counter.Set(5)
//	counter.Set(5)              // equal value: no event
//	counter.Set(7, attr.Silent()) // stored, but no event
//
// Immutable attributes invert the capability: external holders may only read
// and observe, while the constructor returns the mutation capabilities as
// separate values held by the owning scope:
//
//	temp, setTemp, broadcast := attr.NewImmutable(21.5)
//
//	temp.Changed().Connect(func(u attr.Update[float64]) {
//		fmt.Println("now", u.Value)
//	})
//
//	setTemp(22.0)  // only the owner can do this
//	broadcast()    // re-announce the current value without changing it
//
// Transforms adapt values on the way in and out:
//
//	celsius := attr.NewMutable(0.0,
//		attr.WithSet(func(v float64, _ ...any) float64 { return clamp(v) }),
//	)
package attr
