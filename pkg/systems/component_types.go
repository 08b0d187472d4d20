package systems

import (
	"reflect"

	"github.com/decker502/mergeball/pkg/components"
)

// 常用组件类型，避免每帧重复反射
var (
	typeOfPosition       = reflect.TypeOf(&components.PositionComponent{})
	typeOfVelocity       = reflect.TypeOf(&components.VelocityComponent{})
	typeOfRigidbody      = reflect.TypeOf(&components.RigidbodyComponent{})
	typeOfCircleCollider = reflect.TypeOf(&components.CircleColliderComponent{})
	typeOfBall           = reflect.TypeOf(&components.BallComponent{})
	typeOfPhysicsGate    = reflect.TypeOf(&components.PhysicsGateComponent{})
	typeOfMergePop       = reflect.TypeOf(&components.MergePopComponent{})
)
