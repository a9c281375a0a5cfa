package engine

// Scene owns a tree of GameObjects under an implicit Root, an O(1) UID
// lookup table, and a global tag registry. The registry keeps objects in
// registration order, which is the candidate order tag queries scan in.
type Scene struct {
	Name string
	Root *GameObject

	uidMap   map[uint64]*GameObject
	tagIndex map[string][]*GameObject
}

func NewScene(name string) *Scene {
	s := &Scene{
		Name:     name,
		uidMap:   make(map[uint64]*GameObject),
		tagIndex: make(map[string][]*GameObject),
	}
	s.Root = newGameObject(name, KindModel)
	s.Root.Scene = s
	return s
}

// GameObjects returns the scene's top-level objects in AddGameObject order.
func (s *Scene) GameObjects() []*GameObject {
	return s.Root.Children
}

// AddGameObject parents g under the scene root and registers its subtree.
func (s *Scene) AddGameObject(g *GameObject) {
	s.Root.AddChild(g)
}

func (s *Scene) RemoveGameObject(g *GameObject) {
	s.Root.RemoveChild(g)
}

// register indexes g and everything below it. Called whenever a subtree is
// attached under an object that belongs to this scene.
func (s *Scene) register(g *GameObject) {
	if s.uidMap == nil {
		s.uidMap = make(map[uint64]*GameObject)
	}
	g.Scene = s
	s.uidMap[g.UID] = g
	for _, tag := range g.Tags {
		s.registerTag(tag, g)
	}
	for _, child := range g.Children {
		s.register(child)
	}
}

func (s *Scene) unregister(g *GameObject) {
	g.Scene = nil
	delete(s.uidMap, g.UID)
	for _, tag := range g.Tags {
		s.unregisterTag(tag, g)
	}
	for _, child := range g.Children {
		s.unregister(child)
	}
}

func (s *Scene) registerTag(tag string, g *GameObject) {
	if s.tagIndex == nil {
		s.tagIndex = make(map[string][]*GameObject)
	}
	for _, existing := range s.tagIndex[tag] {
		if existing == g {
			return
		}
	}
	s.tagIndex[tag] = append(s.tagIndex[tag], g)
}

func (s *Scene) unregisterTag(tag string, g *GameObject) {
	tagged := s.tagIndex[tag]
	for i, existing := range tagged {
		if existing == g {
			s.tagIndex[tag] = append(tagged[:i], tagged[i+1:]...)
			return
		}
	}
}

// FindByUID is an O(1) lookup of any registered object in the scene.
func (s *Scene) FindByUID(uid uint64) *GameObject {
	return s.uidMap[uid]
}

// FindByName returns the first object named name, in traversal order.
func (s *Scene) FindByName(name string) *GameObject {
	return s.Root.FindFirstChild(name, true)
}

// FindByTag returns every object in the scene carrying tag, in the order
// they were registered. The returned slice is shared; callers must not
// mutate it.
func (s *Scene) FindByTag(tag string) []*GameObject {
	return s.tagIndex[tag]
}

func (s *Scene) Start() {
	for _, g := range s.Root.Children {
		g.Start()
	}
}

func (s *Scene) Update(deltaTime float32) {
	for _, g := range s.Root.Children {
		g.Update(deltaTime)
	}
}
