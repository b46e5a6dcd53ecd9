package ecs

import "testing"

type testHealthComponent struct {
	Health float64
}

func TestGenericAccessors(t *testing.T) {
	em := NewEntityManager()
	a := em.CreateEntity()
	b := em.CreateEntity()

	AddComponent(em, a, &testPositionComponent{X: 1, Y: 2})
	AddComponent(em, a, &testVelocityComponent{VX: 3})
	AddComponent(em, a, &testHealthComponent{Health: 100})
	AddComponent(em, b, &testPositionComponent{X: 5})

	t.Run("GetComponent", func(t *testing.T) {
		pos, ok := GetComponent[*testPositionComponent](em, a)
		if !ok {
			t.Fatal("组件应存在")
		}
		if pos.X != 1 || pos.Y != 2 {
			t.Errorf("组件值错误: %+v", pos)
		}

		// 返回的是同一指针，修改可见
		pos.X = 10
		again, _ := GetComponent[*testPositionComponent](em, a)
		if again.X != 10 {
			t.Error("GetComponent 应返回存储的指针")
		}
	})

	t.Run("缺失组件返回零值", func(t *testing.T) {
		vel, ok := GetComponent[*testVelocityComponent](em, b)
		if ok || vel != nil {
			t.Errorf("expected (nil,false), got (%v,%v)", vel, ok)
		}
		if _, ok := GetComponent[*testVelocityComponent](em, EntityID(999)); ok {
			t.Error("不存在的实体不应返回组件")
		}
	})

	t.Run("查询", func(t *testing.T) {
		if got := GetEntitiesWith1[*testPositionComponent](em); len(got) != 2 || got[0] != a || got[1] != b {
			t.Errorf("GetEntitiesWith1 = %v", got)
		}
		if got := GetEntitiesWith2[*testPositionComponent, *testVelocityComponent](em); len(got) != 1 || got[0] != a {
			t.Errorf("GetEntitiesWith2 = %v", got)
		}
		if got := GetEntitiesWith3[*testPositionComponent, *testVelocityComponent, *testHealthComponent](em); len(got) != 1 {
			t.Errorf("GetEntitiesWith3 = %v", got)
		}
	})

	t.Run("HasComponent/RemoveComponent", func(t *testing.T) {
		if !HasComponent[*testHealthComponent](em, a) {
			t.Fatal("应拥有 health 组件")
		}
		RemoveComponent[*testHealthComponent](em, a)
		if HasComponent[*testHealthComponent](em, a) {
			t.Error("移除后不应拥有 health 组件")
		}
	})
}
