package behaviour

import (
	"testing"
)

func TestComponentManagerRegister(t *testing.T) {
	cm := NewComponentManager()
	obj := NewGameObject("Test")

	cm.RegisterGameObject(obj)

	all := cm.GetAllGameObjects()
	if len(all) != 1 {
		t.Errorf("Expected 1 registered object, got %d", len(all))
	}
}

func TestComponentManagerUnregister(t *testing.T) {
	cm := NewComponentManager()
	obj := NewGameObject("Test")

	cm.RegisterGameObject(obj)
	cm.UnregisterGameObject(obj)

	all := cm.GetAllGameObjects()
	if len(all) != 0 {
		t.Errorf("Expected 0 objects after unregister, got %d", len(all))
	}
}

func TestComponentManagerUpdateAll(t *testing.T) {
	cm := NewComponentManager()
	obj := NewGameObject("Test")
	comp := &MockComponent{}
	obj.AddComponent(comp)
	cm.RegisterGameObject(obj)

	cm.UpdateAll()

	if !comp.updateCalled {
		t.Error("Update() was not called on component")
	}
}

func TestComponentManagerFixedUpdateAll(t *testing.T) {
	cm := NewComponentManager()
	obj := NewGameObject("Test")
	comp := &MockComponent{}
	obj.AddComponent(comp)
	cm.RegisterGameObject(obj)

	cm.FixedUpdateAll()

	if !comp.fixedCalled {
		t.Error("FixedUpdate() was not called on component")
	}
}

func TestComponentManagerInactiveObject(t *testing.T) {
	cm := NewComponentManager()
	obj := NewGameObject("Test")
	obj.Active = false
	comp := &MockComponent{}
	obj.AddComponent(comp)
	cm.RegisterGameObject(obj)

	cm.UpdateAll()

	if comp.updateCalled {
		t.Error("Update() should not be called on inactive object")
	}
}

func TestComponentManagerFindGameObject(t *testing.T) {
	cm := NewComponentManager()
	obj := NewGameObject("FindMe")
	cm.RegisterGameObject(obj)

	found := cm.FindGameObject("FindMe")

	if found == nil {
		t.Error("FindGameObject should find registered object")
	}
	if found != obj {
		t.Error("FindGameObject returned wrong object")
	}
}

func TestComponentManagerFindGameObjectNotFound(t *testing.T) {
	cm := NewComponentManager()

	found := cm.FindGameObject("NotHere")

	if found != nil {
		t.Error("FindGameObject should return nil for non-existent object")
	}
}

func TestComponentManagerClear(t *testing.T) {
	cm := NewComponentManager()
	cm.RegisterGameObject(NewGameObject("A"))
	cm.RegisterGameObject(NewGameObject("B"))

	cm.Clear()

	all := cm.GetAllGameObjects()
	if len(all) != 0 {
		t.Errorf("Clear should remove all objects, got %d", len(all))
	}
}

func TestComponentManagerDeferredDestroy(t *testing.T) {
	cm := NewComponentManager()
	obj := NewGameObject("Doomed")
	cm.RegisterGameObject(obj)

	cm.DestroyGameObject(obj)
	if len(cm.GetAllGameObjects()) != 1 {
		t.Fatal("Object should survive until the next update")
	}

	cm.UpdateAll()

	if len(cm.GetAllGameObjects()) != 0 {
		t.Error("Object should be removed on the next update")
	}
	if obj.Active {
		t.Error("Destroyed object should be inactive")
	}
}

func TestDirectionalLights(t *testing.T) {
	cm := NewComponentManager()

	sun := NewGameObject("Sun")
	sun.AddComponent(NewLightComponent())
	lamp := NewGameObject("Lamp")
	point := NewLightComponent()
	point.LightMode = "point"
	lamp.AddComponent(point)
	moon := NewGameObject("Moon")
	moon.AddComponent(NewLightComponent())
	moon.Active = false

	cm.RegisterGameObject(sun)
	cm.RegisterGameObject(lamp)
	cm.RegisterGameObject(moon)

	lights := DirectionalLights(cm)

	if len(lights) != 1 || lights[0] != sun {
		t.Errorf("Expected only Sun, got %v", lights)
	}
}

func TestCreateBuiltInComponent(t *testing.T) {
	for _, name := range BuiltInComponents() {
		comp := CreateBuiltInComponent(name)
		if comp == nil {
			t.Fatalf("CreateBuiltInComponent(%q) returned nil", name)
		}
		if GetComponentTypeName(comp) != name {
			t.Errorf("Expected type name %q, got %q", name, GetComponentTypeName(comp))
		}
	}

	if CreateBuiltInComponent("Teapot") != nil {
		t.Error("Unknown component name should return nil")
	}
}
