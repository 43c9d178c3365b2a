package shell

import (
	"errors"

	"github.com/rs/zerolog/log"
	lua "github.com/yuin/gopher-lua"

	"github.com/quantikgo/quantik/piece"
)

func getShell(L *lua.LState) *ShellController {
	shell := L.GetGlobal("quantik_shell")
	ud, ok := shell.(*lua.LUserData)
	if !ok {
		panic("luserdata not right type")
	}
	sc, ok := ud.Value.(*ShellController)
	if !ok {
		panic("shellcontroller not right type")
	}
	return sc
}

// Play takes (row, col, shape) and returns the shell's answer, or a string
// starting with "ERROR: ".
func Play(L *lua.LState) int {
	row := L.CheckInt(1)
	col := L.CheckInt(2)
	shapeStr := L.CheckString(3)
	sc := getShell(L)
	shape, err := piece.ParseShape(shapeStr)
	if err != nil {
		L.Push(lua.LString("ERROR: " + err.Error()))
		return 1
	}
	r, err := sc.playMove(row, col, shape)
	if err != nil {
		log.Err(err).Msg("error-executing-play")
		L.Push(lua.LString("ERROR: " + err.Error()))
		return 1
	}
	L.Push(lua.LString(r.message))
	// return number of results pushed to stack.
	return 1
}

func Undo(L *lua.LState) int {
	sc := getShell(L)
	r, err := sc.undo(&shellcmd{cmd: "undo"})
	if err != nil {
		log.Err(err).Msg("error-executing-undo")
		L.Push(lua.LString("ERROR: " + err.Error()))
		return 1
	}
	L.Push(lua.LString(r.message))
	return 1
}

func Show(L *lua.LState) int {
	sc := getShell(L)
	r, err := sc.show(&shellcmd{cmd: "show"})
	if err != nil {
		log.Err(err).Msg("error-executing-show")
		return 0
	}
	L.Push(lua.LString(r.message))
	return 1
}

// Legal returns a table of the legal moves in "row,col CODEcolor" notation.
func Legal(L *lua.LState) int {
	sc := getShell(L)
	tbl := L.NewTable()
	for _, m := range sc.legalMoves() {
		tbl.Append(lua.LString(m))
	}
	L.Push(tbl)
	return 1
}

func (sc *ShellController) script(cmd *shellcmd) (*Response, error) {
	if cmd.args == nil {
		return nil, errors.New("need arguments for script")
	}

	filepath := cmd.args[0]

	L := lua.NewState()
	defer L.Close()

	lsc := L.NewUserData()
	lsc.Value = sc

	L.SetGlobal("quantik_shell", lsc)
	L.SetGlobal("quantik_play", L.NewFunction(Play))
	L.SetGlobal("quantik_undo", L.NewFunction(Undo))
	L.SetGlobal("quantik_show", L.NewFunction(Show))
	L.SetGlobal("quantik_legal", L.NewFunction(Legal))

	if err := L.DoFile(filepath); err != nil {
		log.Err(err).Msg("there was a error")
		return nil, err
	}
	return msg(sc.display(sc.currentGame())), nil
}
