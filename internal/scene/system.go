package scene

// System is per-object behavior run once per frame with the elapsed seconds.
type System func(obj *Object, dt float32)

type namedSystem struct {
	name string
	fn   System
}

// AddSystem attaches fn under name. It returns false and keeps the existing
// system when name is already taken.
func (o *Object) AddSystem(name string, fn System) bool {
	if fn == nil || o.system(name) >= 0 {
		return false
	}
	o.systems = append(o.systems, namedSystem{name: name, fn: fn})
	return true
}

// RemoveSystem detaches the named system and reports whether it existed.
func (o *Object) RemoveSystem(name string) bool {
	i := o.system(name)
	if i < 0 {
		return false
	}
	o.systems = append(o.systems[:i], o.systems[i+1:]...)
	return true
}

func (o *Object) HasSystem(name string) bool { return o.system(name) >= 0 }

// Systems returns the attached names in the order they run.
func (o *Object) Systems() []string {
	names := make([]string, len(o.systems))
	for i, s := range o.systems {
		names[i] = s.name
	}
	return names
}

// RunSystem runs one named system and reports whether it was attached.
func (o *Object) RunSystem(name string, dt float32) bool {
	i := o.system(name)
	if i < 0 {
		return false
	}
	o.systems[i].fn(o, dt)
	return true
}

// RunSystems runs every attached system in attachment order.
func (o *Object) RunSystems(dt float32) {
	for _, s := range o.systems {
		s.fn(o, dt)
	}
}

func (o *Object) system(name string) int {
	for i, s := range o.systems {
		if s.name == name {
			return i
		}
	}
	return -1
}

// RunSystems runs the named system on every object that has it, or every
// system on every object when name is empty. Systems must not create,
// delete or clear objects.
func (m *Manager) RunSystems(name string, dt float32) {
	m.Each(func(_ int, obj *Object) {
		if name == "" {
			obj.RunSystems(dt)
		} else {
			obj.RunSystem(name, dt)
		}
	})
}

// RunAll runs every system on every object. Its signature matches a frame
// hook.
func (m *Manager) RunAll(dt float32) {
	m.RunSystems("", dt)
}
