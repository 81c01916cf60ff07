package behaviour

// ComponentManager owns every GameObject of a scene and drives their
// component lifecycles.
type ComponentManager struct {
	gameObjects []*GameObject
	toDestroy   []*GameObject
}

var GlobalComponentManager = NewComponentManager()

func NewComponentManager() *ComponentManager {
	return &ComponentManager{
		gameObjects: make([]*GameObject, 0),
		toDestroy:   make([]*GameObject, 0),
	}
}

// RegisterGameObject adds a GameObject to the manager and starts it
func (cm *ComponentManager) RegisterGameObject(obj *GameObject) {
	cm.gameObjects = append(cm.gameObjects, obj)
	obj.internalStart()
}

func (cm *ComponentManager) UnregisterGameObject(obj *GameObject) {
	for i, o := range cm.gameObjects {
		if o == obj {
			cm.gameObjects = append(cm.gameObjects[:i], cm.gameObjects[i+1:]...)
			obj.Destroy()
			return
		}
	}
}

// FindGameObject finds a GameObject by name
func (cm *ComponentManager) FindGameObject(name string) *GameObject {
	for _, obj := range cm.gameObjects {
		if obj.Name == name {
			return obj
		}
	}
	return nil
}

// FindComponents returns every component with the given type name across
// active objects, in registration order.
func (cm *ComponentManager) FindComponents(typeName string) []Component {
	var result []Component
	for _, obj := range cm.gameObjects {
		if obj.Active {
			result = append(result, obj.GetComponents(typeName)...)
		}
	}
	return result
}

// UpdateAll calls Update on all active GameObjects
func (cm *ComponentManager) UpdateAll() {
	if len(cm.toDestroy) > 0 {
		for _, obj := range cm.toDestroy {
			cm.UnregisterGameObject(obj)
		}
		cm.toDestroy = cm.toDestroy[:0]
	}

	for _, obj := range cm.gameObjects {
		if obj.Active {
			obj.internalUpdate()
		}
	}
}

// FixedUpdateAll calls FixedUpdate on all active GameObjects
func (cm *ComponentManager) FixedUpdateAll() {
	for _, obj := range cm.gameObjects {
		if obj.Active {
			obj.internalFixedUpdate()
		}
	}
}

// DestroyGameObject marks a GameObject for destruction (will be removed next frame)
func (cm *ComponentManager) DestroyGameObject(obj *GameObject) {
	cm.toDestroy = append(cm.toDestroy, obj)
}

// GetAllGameObjects returns all registered GameObjects
func (cm *ComponentManager) GetAllGameObjects() []*GameObject {
	return cm.gameObjects
}

// Clear removes all GameObjects
func (cm *ComponentManager) Clear() {
	for _, obj := range cm.gameObjects {
		obj.Destroy()
	}
	cm.gameObjects = cm.gameObjects[:0]
	cm.toDestroy = cm.toDestroy[:0]
}
