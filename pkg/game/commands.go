package game

import "github.com/go-gl/mathgl/mgl64"

// CommandType UI 发给会话的命令
type CommandType int

const (
	CommandStartLevel CommandType = iota
	CommandPause
	CommandResume
	CommandRestart
	CommandNextLevel
	CommandMainMenu
)

func (c CommandType) String() string {
	switch c {
	case CommandStartLevel:
		return "StartLevel"
	case CommandPause:
		return "Pause"
	case CommandResume:
		return "Resume"
	case CommandRestart:
		return "Restart"
	case CommandNextLevel:
		return "NextLevel"
	case CommandMainMenu:
		return "MainMenu"
	}
	return "Unknown"
}

// Command 会话命令，Level 仅 CommandStartLevel 使用
type Command struct {
	Type  CommandType
	Level int
}

// InputKind 逻辑输入事件类型
type InputKind int

const (
	InputDragStart InputKind = iota
	InputDrag
	InputDragEnd
	InputClick
)

// InputEvent 已投影到游戏平面的指针输入
type InputEvent struct {
	Kind     InputKind
	Position mgl64.Vec3
}
