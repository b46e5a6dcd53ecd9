// simulate 无窗口运行一个关卡：按脚本拉弓发射并打印会话事件
//
// 用法：
//
//	go run ./cmd/simulate -level 1 -shots "-3,0;-2.5,-1.5" -ability 0.8
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/decker502/slingshot/pkg/config"
	"github.com/decker502/slingshot/pkg/game"
	"github.com/decker502/slingshot/pkg/session"
	"github.com/go-gl/mathgl/mgl64"
)

var (
	levelFlag    = flag.Int("level", 1, "关卡编号")
	dataDir      = flag.String("data", "data", "数据目录（包含 gameplay.yaml 和 levels/）")
	gameplayFlag = flag.String("gameplay", "", "玩法参数文件，默认 <data>/gameplay.yaml")
	shotsFlag    = flag.String("shots", "-3,0", "拉弓偏移列表 \"dx,dy;dx,dy\"，相对静止点，用完后循环")
	abilityFlag  = flag.Float64("ability", -1, "发射后多少秒触发技能，负数表示不触发")
	maxTime      = flag.Float64("max-time", 120, "模拟时长上限（秒）")
	verbose      = flag.Bool("verbose", false, "显示详细调试信息")
)

const frame = 1.0 / 60.0

func main() {
	flag.Parse()
	if !*verbose {
		log.SetOutput(io.Discard)
	}

	shots, err := parseShots(*shotsFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid -shots: %v\n", err)
		os.Exit(2)
	}

	gpPath := *gameplayFlag
	if gpPath == "" {
		gpPath = *dataDir + "/gameplay.yaml"
	}
	gp, err := config.LoadGameplayConfig(gpPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load gameplay config: %v\n", err)
		os.Exit(1)
	}
	levels, err := game.LoadLevelManager(os.DirFS(*dataDir), "levels")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load levels: %v\n", err)
		os.Exit(1)
	}
	sess, err := session.New(gp, levels, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create session: %v\n", err)
		os.Exit(1)
	}

	result, err := simulate(sess, *levelFlag, shots, *abilityFlag, *maxTime, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "simulation failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("result: %s score=%d stars=%d\n", result.Phase, result.Score, result.Stars)
}

// parseShots 解析 "dx,dy;dx,dy" 形式的拉弓偏移
func parseShots(s string) ([]mgl64.Vec3, error) {
	var shots []mgl64.Vec3
	for _, part := range strings.Split(s, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		xy := strings.Split(part, ",")
		if len(xy) != 2 {
			return nil, fmt.Errorf("shot %q: want dx,dy", part)
		}
		dx, err := strconv.ParseFloat(strings.TrimSpace(xy[0]), 64)
		if err != nil {
			return nil, fmt.Errorf("shot %q: %w", part, err)
		}
		dy, err := strconv.ParseFloat(strings.TrimSpace(xy[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("shot %q: %w", part, err)
		}
		shots = append(shots, mgl64.Vec3{dx, dy, 0})
	}
	if len(shots) == 0 {
		return nil, errors.New("no shots")
	}
	return shots, nil
}

// Result 模拟结束时的关卡结果
type Result struct {
	Phase game.Phase
	Score int
	Stars int
}

// simulate 运行关卡直到分出胜负或超时，事件逐行写入 out
func simulate(sess *session.Session, level int, shots []mgl64.Vec3, abilityDelay, maxTime float64, out io.Writer) (Result, error) {
	if err := sess.StartLevel(level); err != nil {
		return Result{}, err
	}

	fired := 0
	sinceLaunch := -1.0
	for t := 0.0; t < maxTime; t += frame {
		st := sess.State()
		if st.Phase == game.PhaseWon || st.Phase == game.PhaseLost {
			break
		}

		snap := sess.Snapshot()
		if st.IsPlaying() && snap.Slingshot.LoadedBird != 0 && !st.LaunchLockout {
			rest := snap.Slingshot.RestPoint
			pull := rest.Add(shots[fired%len(shots)])
			sess.HandleInput(game.InputEvent{Kind: game.InputDragStart, Position: rest})
			sess.HandleInput(game.InputEvent{Kind: game.InputDrag, Position: pull})
			sess.HandleInput(game.InputEvent{Kind: game.InputDragEnd, Position: pull})
			fired++
			sinceLaunch = 0
		} else if sinceLaunch >= 0 {
			sinceLaunch += frame
			if abilityDelay >= 0 && sinceLaunch >= abilityDelay {
				far := snap.Slingshot.RestPoint.Add(mgl64.Vec3{20, 0, 0})
				sess.HandleInput(game.InputEvent{Kind: game.InputClick, Position: far})
				sinceLaunch = -1
			}
		}

		sess.Update(frame)
		for _, e := range sess.DrainEvents() {
			printEvent(out, t, e)
		}
	}

	st := sess.State()
	return Result{Phase: st.Phase, Score: st.Score, Stars: st.Stars}, nil
}

func printEvent(out io.Writer, t float64, e game.Event) {
	switch e.Type {
	case game.EventTrajectoryUpdated, game.EventTrajectoryHidden:
		return
	case game.EventEffect:
		if e.Effect == game.EffectTrail || e.Effect == game.EffectFade {
			return
		}
	}
	fmt.Fprintf(out, "%7.2fs %-16s", t, e.Type)
	switch e.Type {
	case game.EventScoreChanged:
		fmt.Fprintf(out, " score=%d", e.Score)
	case game.EventBirdLoaded:
		fmt.Fprintf(out, " entity=%d remaining=%d", e.Entity, e.BirdsRemaining)
	case game.EventBirdLaunched:
		fmt.Fprintf(out, " entity=%d velocity=(%.1f, %.1f)", e.Entity, e.Velocity.X(), e.Velocity.Y())
	case game.EventLevelWon:
		fmt.Fprintf(out, " score=%d stars=%d time=+%d birds=+%d", e.Score, e.Stars, e.TimeBonus, e.BirdBonus)
	case game.EventEntityRemoved:
		fmt.Fprintf(out, " entity=%d", e.Entity)
	}
	fmt.Fprintln(out)
}
