// Package ecs 实体-组件存储
//
// 组件以指针形式按 reflect.Type 挂在实体上，系统通过 GetEntitiesWith 系列函数
// 按组件组合查询实体。删除是延迟的：DestroyEntity 只做标记，
// 帧末 RemoveMarkedEntities 统一清理，保证系统遍历期间实体集合不变。
package ecs

import (
	"reflect"
	"slices"
)

// EntityID 是实体的唯一标识符，0 为无效ID
// 同一个 EntityManager 内永不复用，关卡重载后继续递增
type EntityID uint64

type componentSet map[reflect.Type]any

// EntityManager 管理所有实体和组件
type EntityManager struct {
	nextID     EntityID
	components map[EntityID]componentSet
	// 待删除实体，按标记顺序保存，同一实体只记录一次
	marked    []EntityID
	markedSet map[EntityID]struct{}
}

// NewEntityManager 创建一个新的 EntityManager 实例
func NewEntityManager() *EntityManager {
	return &EntityManager{
		nextID:     1,
		components: make(map[EntityID]componentSet),
		markedSet:  make(map[EntityID]struct{}),
	}
}

// CreateEntity 创建新实体并返回唯一ID
func (em *EntityManager) CreateEntity() EntityID {
	id := em.nextID
	em.nextID++
	em.components[id] = make(componentSet)
	return id
}

// Exists 检查实体是否仍然存在（已标记但未清理的实体仍视为存在）
func (em *EntityManager) Exists(id EntityID) bool {
	_, ok := em.components[id]
	return ok
}

// Count 返回当前实体数量
func (em *EntityManager) Count() int {
	return len(em.components)
}

// DestroyEntity 标记实体待删除，重复标记和不存在的实体被忽略
func (em *EntityManager) DestroyEntity(id EntityID) {
	if !em.Exists(id) {
		return
	}
	if _, dup := em.markedSet[id]; dup {
		return
	}
	em.markedSet[id] = struct{}{}
	em.marked = append(em.marked, id)
}

// IsMarkedForDestroy 实体是否已标记待删除
func (em *EntityManager) IsMarkedForDestroy(id EntityID) bool {
	_, ok := em.markedSet[id]
	return ok
}

// RemoveMarkedEntities 清理所有标记删除的实体，返回清理数量
func (em *EntityManager) RemoveMarkedEntities() int {
	n := 0
	for _, id := range em.marked {
		if _, ok := em.components[id]; ok {
			delete(em.components, id)
			n++
		}
	}
	em.marked = em.marked[:0]
	clear(em.markedSet)
	return n
}

// Clear 删除所有实体（关卡卸载时调用）
// 不重置 nextID，旧实体ID在新关卡中不会指向新实体
func (em *EntityManager) Clear() {
	em.components = make(map[EntityID]componentSet)
	em.marked = em.marked[:0]
	clear(em.markedSet)
}

// AddComponent 为实体添加组件，同类型组件会被替换
func (em *EntityManager) AddComponent(id EntityID, component any) {
	if set, ok := em.components[id]; ok {
		set[reflect.TypeOf(component)] = component
	}
}

// RemoveComponent 从实体移除指定类型的组件
func (em *EntityManager) RemoveComponent(id EntityID, componentType reflect.Type) {
	if set, ok := em.components[id]; ok {
		delete(set, componentType)
	}
}

// GetComponent 获取实体的特定类型组件
func (em *EntityManager) GetComponent(id EntityID, componentType reflect.Type) (any, bool) {
	comp, ok := em.components[id][componentType]
	return comp, ok
}

// HasComponent 检查实体是否拥有特定类型组件
func (em *EntityManager) HasComponent(id EntityID, componentType reflect.Type) bool {
	_, ok := em.components[id][componentType]
	return ok
}

// GetEntitiesWith 查询拥有全部指定组件类型的实体，按ID升序返回
// 排序使每帧的系统遍历顺序稳定，物理和计分结果可复现
func (em *EntityManager) GetEntitiesWith(componentTypes ...reflect.Type) []EntityID {
	result := make([]EntityID, 0)
	for id, set := range em.components {
		if set.hasAll(componentTypes) {
			result = append(result, id)
		}
	}
	slices.Sort(result)
	return result
}

func (s componentSet) hasAll(types []reflect.Type) bool {
	for _, t := range types {
		if _, ok := s[t]; !ok {
			return false
		}
	}
	return true
}
