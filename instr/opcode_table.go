// Code generated from the BEAM generic-instruction table; do not hand-edit the entries below.
package instr

// Opcode identifies a single BEAM generic instruction by its wire byte value.
type Opcode uint8

const (
	OpLabel             Opcode = 1
	OpFuncInfo          Opcode = 2
	OpIntCodeEnd        Opcode = 3
	OpCall              Opcode = 4
	OpCallLast          Opcode = 5
	OpCallOnly          Opcode = 6
	OpCallExt           Opcode = 7
	OpCallExtLast       Opcode = 8
	OpBif0              Opcode = 9
	OpBif1              Opcode = 10
	OpBif2              Opcode = 11
	OpAllocate          Opcode = 12
	OpAllocateHeap      Opcode = 13
	OpAllocateZero      Opcode = 14
	OpAllocateHeapZero  Opcode = 15
	OpTestHeap          Opcode = 16
	OpInit              Opcode = 17
	OpDeallocate        Opcode = 18
	OpReturn            Opcode = 19
	OpSend              Opcode = 20
	OpRemoveMessage     Opcode = 21
	OpTimeout           Opcode = 22
	OpLoopRec           Opcode = 23
	OpLoopRecEnd        Opcode = 24
	OpWait              Opcode = 25
	OpWaitTimeout       Opcode = 26
	OpMPlus             Opcode = 27
	OpMMinus            Opcode = 28
	OpMTimes            Opcode = 29
	OpMDiv              Opcode = 30
	OpIntDiv            Opcode = 31
	OpIntRem            Opcode = 32
	OpIntBand           Opcode = 33
	OpIntBor            Opcode = 34
	OpIntBxor           Opcode = 35
	OpIntBsl            Opcode = 36
	OpIntBsr            Opcode = 37
	OpIntBnot           Opcode = 38
	OpIsLt              Opcode = 39
	OpIsGe              Opcode = 40
	OpIsEq              Opcode = 41
	OpIsNe              Opcode = 42
	OpIsEqExact         Opcode = 43
	OpIsNeExact         Opcode = 44
	OpIsInteger         Opcode = 45
	OpIsFloat           Opcode = 46
	OpIsNumber          Opcode = 47
	OpIsAtom            Opcode = 48
	OpIsPid             Opcode = 49
	OpIsReference       Opcode = 50
	OpIsPort            Opcode = 51
	OpIsNil             Opcode = 52
	OpIsBinary          Opcode = 53
	OpIsConstant        Opcode = 54
	OpIsList            Opcode = 55
	OpIsNonemptyList    Opcode = 56
	OpIsTuple           Opcode = 57
	OpTestArity         Opcode = 58
	OpSelectVal         Opcode = 59
	OpSelectTupleArity  Opcode = 60
	OpJump              Opcode = 61
	OpCatch             Opcode = 62
	OpCatchEnd          Opcode = 63
	OpMove              Opcode = 64
	OpGetList           Opcode = 65
	OpGetTupleElement   Opcode = 66
	OpSetTupleElement   Opcode = 67
	OpPutString         Opcode = 68
	OpPutList           Opcode = 69
	OpPutTuple          Opcode = 70
	OpPut               Opcode = 71
	OpBadmatch          Opcode = 72
	OpIfEnd             Opcode = 73
	OpCaseEnd           Opcode = 74
	OpCallFun           Opcode = 75
	OpMakeFun           Opcode = 76
	OpIsFunction        Opcode = 77
	OpCallExtOnly       Opcode = 78
	OpBsStartMatch      Opcode = 79
	OpBsGetInteger      Opcode = 80
	OpBsGetFloat        Opcode = 81
	OpBsGetBinary       Opcode = 82
	OpBsSkipBits        Opcode = 83
	OpBsTestTail        Opcode = 84
	OpBsSave            Opcode = 85
	OpBsRestore         Opcode = 86
	OpBsInit            Opcode = 87
	OpBsFinal           Opcode = 88
	OpBsPutInteger      Opcode = 89
	OpBsPutBinary       Opcode = 90
	OpBsPutFloat        Opcode = 91
	OpBsPutString       Opcode = 92
	OpBsNeedBuf         Opcode = 93
	OpFclearerror       Opcode = 94
	OpFcheckerror       Opcode = 95
	OpFmove             Opcode = 96
	OpFconv             Opcode = 97
	OpFadd              Opcode = 98
	OpFsub              Opcode = 99
	OpFmul              Opcode = 100
	OpFdiv              Opcode = 101
	OpFnegate           Opcode = 102
	OpMakeFun2          Opcode = 103
	OpTry               Opcode = 104
	OpTryEnd            Opcode = 105
	OpTryCase           Opcode = 106
	OpTryCaseEnd        Opcode = 107
	OpRaise             Opcode = 108
	OpBsInit2           Opcode = 109
	OpBsBitsToBytes     Opcode = 110
	OpBsAdd             Opcode = 111
	OpApply             Opcode = 112
	OpApplyLast         Opcode = 113
	OpIsBoolean         Opcode = 114
	OpIsFunction2       Opcode = 115
	OpBsStartMatch2     Opcode = 116
	OpBsGetInteger2     Opcode = 117
	OpBsGetFloat2       Opcode = 118
	OpBsGetBinary2      Opcode = 119
	OpBsSkipBits2       Opcode = 120
	OpBsTestTail2       Opcode = 121
	OpBsSave2           Opcode = 122
	OpBsRestore2        Opcode = 123
	OpGcBif1            Opcode = 124
	OpGcBif2            Opcode = 125
	OpBsFinal2          Opcode = 126
	OpBsBitsToBytes2    Opcode = 127
	OpPutLiteral        Opcode = 128
	OpIsBitstr          Opcode = 129
	OpBsContextToBinary Opcode = 130
	OpBsTestUnit        Opcode = 131
	OpBsMatchString     Opcode = 132
	OpBsInitWritable    Opcode = 133
	OpBsAppend          Opcode = 134
	OpBsPrivateAppend   Opcode = 135
	OpTrim              Opcode = 136
	OpBsInitBits        Opcode = 137
	OpBsGetUtf8         Opcode = 138
	OpBsSkipUtf8        Opcode = 139
	OpBsGetUtf16        Opcode = 140
	OpBsSkipUtf16       Opcode = 141
	OpBsGetUtf32        Opcode = 142
	OpBsSkipUtf32       Opcode = 143
	OpBsUtf8Size        Opcode = 144
	OpBsPutUtf8         Opcode = 145
	OpBsUtf16Size       Opcode = 146
	OpBsPutUtf16        Opcode = 147
	OpBsPutUtf32        Opcode = 148
	OpOnLoad            Opcode = 149
	OpRecvMark          Opcode = 150
	OpRecvSet           Opcode = 151
	OpGcBif3            Opcode = 152
	OpLine              Opcode = 153
	OpPutMapAssoc       Opcode = 154
	OpPutMapExact       Opcode = 155
	OpIsMap             Opcode = 156
	OpHasMapFields      Opcode = 157
	OpGetMapElement     Opcode = 158
	OpIsTaggedTuple     Opcode = 159
	OpBuildStacktrace   Opcode = 160
	OpRawRaise          Opcode = 161
	OpGetHd             Opcode = 162
	OpGetTl             Opcode = 163
	OpPutTuple2         Opcode = 164
	OpBsGetTail         Opcode = 165
	OpBsStartMatch3     Opcode = 166
	OpBsGetPosition     Opcode = 167
	OpBsSetPosition     Opcode = 168
	OpSwap              Opcode = 169
	OpBsStartMatch4     Opcode = 170
	OpMakeFun3          Opcode = 171
	OpInitYregs         Opcode = 172
	OpRecvMarkerBind    Opcode = 173
	OpRecvMarkerClear   Opcode = 174
	OpRecvMarkerReserve Opcode = 175
	OpRecvMarkerUse     Opcode = 176
	OpBsCreateBin       Opcode = 177
	OpCallFun2          Opcode = 178
	OpNifStart          Opcode = 179
	OpBadrecord         Opcode = 180
)

var opcodeNames = map[Opcode]string{
	OpLabel: "Label",
	OpFuncInfo: "FuncInfo",
	OpIntCodeEnd: "IntCodeEnd",
	OpCall: "Call",
	OpCallLast: "CallLast",
	OpCallOnly: "CallOnly",
	OpCallExt: "CallExt",
	OpCallExtLast: "CallExtLast",
	OpBif0: "Bif0",
	OpBif1: "Bif1",
	OpBif2: "Bif2",
	OpAllocate: "Allocate",
	OpAllocateHeap: "AllocateHeap",
	OpAllocateZero: "AllocateZero",
	OpAllocateHeapZero: "AllocateHeapZero",
	OpTestHeap: "TestHeap",
	OpInit: "Init",
	OpDeallocate: "Deallocate",
	OpReturn: "Return",
	OpSend: "Send",
	OpRemoveMessage: "RemoveMessage",
	OpTimeout: "Timeout",
	OpLoopRec: "LoopRec",
	OpLoopRecEnd: "LoopRecEnd",
	OpWait: "Wait",
	OpWaitTimeout: "WaitTimeout",
	OpMPlus: "MPlus",
	OpMMinus: "MMinus",
	OpMTimes: "MTimes",
	OpMDiv: "MDiv",
	OpIntDiv: "IntDiv",
	OpIntRem: "IntRem",
	OpIntBand: "IntBand",
	OpIntBor: "IntBor",
	OpIntBxor: "IntBxor",
	OpIntBsl: "IntBsl",
	OpIntBsr: "IntBsr",
	OpIntBnot: "IntBnot",
	OpIsLt: "IsLt",
	OpIsGe: "IsGe",
	OpIsEq: "IsEq",
	OpIsNe: "IsNe",
	OpIsEqExact: "IsEqExact",
	OpIsNeExact: "IsNeExact",
	OpIsInteger: "IsInteger",
	OpIsFloat: "IsFloat",
	OpIsNumber: "IsNumber",
	OpIsAtom: "IsAtom",
	OpIsPid: "IsPid",
	OpIsReference: "IsReference",
	OpIsPort: "IsPort",
	OpIsNil: "IsNil",
	OpIsBinary: "IsBinary",
	OpIsConstant: "IsConstant",
	OpIsList: "IsList",
	OpIsNonemptyList: "IsNonemptyList",
	OpIsTuple: "IsTuple",
	OpTestArity: "TestArity",
	OpSelectVal: "SelectVal",
	OpSelectTupleArity: "SelectTupleArity",
	OpJump: "Jump",
	OpCatch: "Catch",
	OpCatchEnd: "CatchEnd",
	OpMove: "Move",
	OpGetList: "GetList",
	OpGetTupleElement: "GetTupleElement",
	OpSetTupleElement: "SetTupleElement",
	OpPutString: "PutString",
	OpPutList: "PutList",
	OpPutTuple: "PutTuple",
	OpPut: "Put",
	OpBadmatch: "Badmatch",
	OpIfEnd: "IfEnd",
	OpCaseEnd: "CaseEnd",
	OpCallFun: "CallFun",
	OpMakeFun: "MakeFun",
	OpIsFunction: "IsFunction",
	OpCallExtOnly: "CallExtOnly",
	OpBsStartMatch: "BsStartMatch",
	OpBsGetInteger: "BsGetInteger",
	OpBsGetFloat: "BsGetFloat",
	OpBsGetBinary: "BsGetBinary",
	OpBsSkipBits: "BsSkipBits",
	OpBsTestTail: "BsTestTail",
	OpBsSave: "BsSave",
	OpBsRestore: "BsRestore",
	OpBsInit: "BsInit",
	OpBsFinal: "BsFinal",
	OpBsPutInteger: "BsPutInteger",
	OpBsPutBinary: "BsPutBinary",
	OpBsPutFloat: "BsPutFloat",
	OpBsPutString: "BsPutString",
	OpBsNeedBuf: "BsNeedBuf",
	OpFclearerror: "Fclearerror",
	OpFcheckerror: "Fcheckerror",
	OpFmove: "Fmove",
	OpFconv: "Fconv",
	OpFadd: "Fadd",
	OpFsub: "Fsub",
	OpFmul: "Fmul",
	OpFdiv: "Fdiv",
	OpFnegate: "Fnegate",
	OpMakeFun2: "MakeFun2",
	OpTry: "Try",
	OpTryEnd: "TryEnd",
	OpTryCase: "TryCase",
	OpTryCaseEnd: "TryCaseEnd",
	OpRaise: "Raise",
	OpBsInit2: "BsInit2",
	OpBsBitsToBytes: "BsBitsToBytes",
	OpBsAdd: "BsAdd",
	OpApply: "Apply",
	OpApplyLast: "ApplyLast",
	OpIsBoolean: "IsBoolean",
	OpIsFunction2: "IsFunction2",
	OpBsStartMatch2: "BsStartMatch2",
	OpBsGetInteger2: "BsGetInteger2",
	OpBsGetFloat2: "BsGetFloat2",
	OpBsGetBinary2: "BsGetBinary2",
	OpBsSkipBits2: "BsSkipBits2",
	OpBsTestTail2: "BsTestTail2",
	OpBsSave2: "BsSave2",
	OpBsRestore2: "BsRestore2",
	OpGcBif1: "GcBif1",
	OpGcBif2: "GcBif2",
	OpBsFinal2: "BsFinal2",
	OpBsBitsToBytes2: "BsBitsToBytes2",
	OpPutLiteral: "PutLiteral",
	OpIsBitstr: "IsBitstr",
	OpBsContextToBinary: "BsContextToBinary",
	OpBsTestUnit: "BsTestUnit",
	OpBsMatchString: "BsMatchString",
	OpBsInitWritable: "BsInitWritable",
	OpBsAppend: "BsAppend",
	OpBsPrivateAppend: "BsPrivateAppend",
	OpTrim: "Trim",
	OpBsInitBits: "BsInitBits",
	OpBsGetUtf8: "BsGetUtf8",
	OpBsSkipUtf8: "BsSkipUtf8",
	OpBsGetUtf16: "BsGetUtf16",
	OpBsSkipUtf16: "BsSkipUtf16",
	OpBsGetUtf32: "BsGetUtf32",
	OpBsSkipUtf32: "BsSkipUtf32",
	OpBsUtf8Size: "BsUtf8Size",
	OpBsPutUtf8: "BsPutUtf8",
	OpBsUtf16Size: "BsUtf16Size",
	OpBsPutUtf16: "BsPutUtf16",
	OpBsPutUtf32: "BsPutUtf32",
	OpOnLoad: "OnLoad",
	OpRecvMark: "RecvMark",
	OpRecvSet: "RecvSet",
	OpGcBif3: "GcBif3",
	OpLine: "Line",
	OpPutMapAssoc: "PutMapAssoc",
	OpPutMapExact: "PutMapExact",
	OpIsMap: "IsMap",
	OpHasMapFields: "HasMapFields",
	OpGetMapElement: "GetMapElement",
	OpIsTaggedTuple: "IsTaggedTuple",
	OpBuildStacktrace: "BuildStacktrace",
	OpRawRaise: "RawRaise",
	OpGetHd: "GetHd",
	OpGetTl: "GetTl",
	OpPutTuple2: "PutTuple2",
	OpBsGetTail: "BsGetTail",
	OpBsStartMatch3: "BsStartMatch3",
	OpBsGetPosition: "BsGetPosition",
	OpBsSetPosition: "BsSetPosition",
	OpSwap: "Swap",
	OpBsStartMatch4: "BsStartMatch4",
	OpMakeFun3: "MakeFun3",
	OpInitYregs: "InitYregs",
	OpRecvMarkerBind: "RecvMarkerBind",
	OpRecvMarkerClear: "RecvMarkerClear",
	OpRecvMarkerReserve: "RecvMarkerReserve",
	OpRecvMarkerUse: "RecvMarkerUse",
	OpBsCreateBin: "BsCreateBin",
	OpCallFun2: "CallFun2",
	OpNifStart: "NifStart",
	OpBadrecord: "Badrecord",
}

// table is the declarative opcode schema: for every defined opcode, the ordered,
// named operand fields and their expected term kind.
var table = map[Opcode]Spec{
	OpLabel: {Opcode: OpLabel, Name: "Label", Deprecated: false, Fields: []Field{{Name: "Literal", Kind: FieldUsize}}},
	OpFuncInfo: {Opcode: OpFuncInfo, Name: "FuncInfo", Deprecated: false, Fields: []Field{{Name: "Module", Kind: FieldAtom}, {Name: "Function", Kind: FieldAtom}, {Name: "Arity", Kind: FieldUsize}}},
	OpIntCodeEnd: {Opcode: OpIntCodeEnd, Name: "IntCodeEnd", Deprecated: false, Fields: []Field{}},
	OpCall: {Opcode: OpCall, Name: "Call", Deprecated: false, Fields: []Field{{Name: "Arity", Kind: FieldUsize}, {Name: "Label", Kind: FieldLabel}}},
	OpCallLast: {Opcode: OpCallLast, Name: "CallLast", Deprecated: false, Fields: []Field{{Name: "Arg1", Kind: FieldTerm}, {Name: "Arg2", Kind: FieldTerm}, {Name: "Arg3", Kind: FieldTerm}}},
	OpCallOnly: {Opcode: OpCallOnly, Name: "CallOnly", Deprecated: false, Fields: []Field{{Name: "Arity", Kind: FieldUsize}, {Name: "Label", Kind: FieldLabel}}},
	OpCallExt: {Opcode: OpCallExt, Name: "CallExt", Deprecated: false, Fields: []Field{{Name: "Arity", Kind: FieldUsize}, {Name: "Destination", Kind: FieldUsize}}},
	OpCallExtLast: {Opcode: OpCallExtLast, Name: "CallExtLast", Deprecated: false, Fields: []Field{{Name: "Arity", Kind: FieldUsize}, {Name: "Destination", Kind: FieldUsize}, {Name: "Deallocate", Kind: FieldUsize}}},
	OpBif0: {Opcode: OpBif0, Name: "Bif0", Deprecated: false, Fields: []Field{{Name: "Arg1", Kind: FieldTerm}, {Name: "Arg2", Kind: FieldTerm}}},
	OpBif1: {Opcode: OpBif1, Name: "Bif1", Deprecated: false, Fields: []Field{{Name: "Arg1", Kind: FieldTerm}, {Name: "Arg2", Kind: FieldTerm}, {Name: "Arg3", Kind: FieldTerm}, {Name: "Arg4", Kind: FieldTerm}}},
	OpBif2: {Opcode: OpBif2, Name: "Bif2", Deprecated: false, Fields: []Field{{Name: "Arg1", Kind: FieldTerm}, {Name: "Arg2", Kind: FieldTerm}, {Name: "Arg3", Kind: FieldTerm}, {Name: "Arg4", Kind: FieldTerm}, {Name: "Arg5", Kind: FieldTerm}}},
	OpAllocate: {Opcode: OpAllocate, Name: "Allocate", Deprecated: false, Fields: []Field{{Name: "StackNeed", Kind: FieldAllocation}, {Name: "Live", Kind: FieldUsize}}},
	OpAllocateHeap: {Opcode: OpAllocateHeap, Name: "AllocateHeap", Deprecated: false, Fields: []Field{{Name: "StackNeed", Kind: FieldAllocation}, {Name: "HeapNeed", Kind: FieldAllocation}, {Name: "Live", Kind: FieldUsize}}},
	OpAllocateZero: {Opcode: OpAllocateZero, Name: "AllocateZero", Deprecated: false, Fields: []Field{{Name: "Arg1", Kind: FieldTerm}, {Name: "Arg2", Kind: FieldTerm}}},
	OpAllocateHeapZero: {Opcode: OpAllocateHeapZero, Name: "AllocateHeapZero", Deprecated: false, Fields: []Field{{Name: "StackNeed", Kind: FieldAllocation}, {Name: "HeapNeed", Kind: FieldAllocation}, {Name: "Live", Kind: FieldUsize}}},
	OpTestHeap: {Opcode: OpTestHeap, Name: "TestHeap", Deprecated: false, Fields: []Field{{Name: "HeapNeed", Kind: FieldAllocation}, {Name: "Live", Kind: FieldUsize}}},
	OpInit: {Opcode: OpInit, Name: "Init", Deprecated: false, Fields: []Field{{Name: "Arg1", Kind: FieldTerm}}},
	OpDeallocate: {Opcode: OpDeallocate, Name: "Deallocate", Deprecated: false, Fields: []Field{{Name: "N", Kind: FieldUsize}}},
	OpReturn: {Opcode: OpReturn, Name: "Return", Deprecated: false, Fields: []Field{}},
	OpSend: {Opcode: OpSend, Name: "Send", Deprecated: false, Fields: []Field{}},
	OpRemoveMessage: {Opcode: OpRemoveMessage, Name: "RemoveMessage", Deprecated: false, Fields: []Field{}},
	OpTimeout: {Opcode: OpTimeout, Name: "Timeout", Deprecated: false, Fields: []Field{}},
	OpLoopRec: {Opcode: OpLoopRec, Name: "LoopRec", Deprecated: false, Fields: []Field{{Name: "Arg1", Kind: FieldTerm}, {Name: "Arg2", Kind: FieldTerm}}},
	OpLoopRecEnd: {Opcode: OpLoopRecEnd, Name: "LoopRecEnd", Deprecated: false, Fields: []Field{{Name: "Arg1", Kind: FieldTerm}}},
	OpWait: {Opcode: OpWait, Name: "Wait", Deprecated: false, Fields: []Field{{Name: "Arg1", Kind: FieldTerm}}},
	OpWaitTimeout: {Opcode: OpWaitTimeout, Name: "WaitTimeout", Deprecated: false, Fields: []Field{{Name: "Arg1", Kind: FieldTerm}, {Name: "Arg2", Kind: FieldTerm}}},
	OpMPlus: {Opcode: OpMPlus, Name: "MPlus", Deprecated: true, Fields: []Field{{Name: "Arg1", Kind: FieldTerm}, {Name: "Arg2", Kind: FieldTerm}, {Name: "Arg3", Kind: FieldTerm}, {Name: "Arg4", Kind: FieldTerm}}},
	OpMMinus: {Opcode: OpMMinus, Name: "MMinus", Deprecated: true, Fields: []Field{{Name: "Arg1", Kind: FieldTerm}, {Name: "Arg2", Kind: FieldTerm}, {Name: "Arg3", Kind: FieldTerm}, {Name: "Arg4", Kind: FieldTerm}}},
	OpMTimes: {Opcode: OpMTimes, Name: "MTimes", Deprecated: true, Fields: []Field{{Name: "Arg1", Kind: FieldTerm}, {Name: "Arg2", Kind: FieldTerm}, {Name: "Arg3", Kind: FieldTerm}, {Name: "Arg4", Kind: FieldTerm}}},
	OpMDiv: {Opcode: OpMDiv, Name: "MDiv", Deprecated: true, Fields: []Field{{Name: "Arg1", Kind: FieldTerm}, {Name: "Arg2", Kind: FieldTerm}, {Name: "Arg3", Kind: FieldTerm}, {Name: "Arg4", Kind: FieldTerm}}},
	OpIntDiv: {Opcode: OpIntDiv, Name: "IntDiv", Deprecated: true, Fields: []Field{{Name: "Arg1", Kind: FieldTerm}, {Name: "Arg2", Kind: FieldTerm}, {Name: "Arg3", Kind: FieldTerm}, {Name: "Arg4", Kind: FieldTerm}}},
	OpIntRem: {Opcode: OpIntRem, Name: "IntRem", Deprecated: true, Fields: []Field{{Name: "Arg1", Kind: FieldTerm}, {Name: "Arg2", Kind: FieldTerm}, {Name: "Arg3", Kind: FieldTerm}, {Name: "Arg4", Kind: FieldTerm}}},
	OpIntBand: {Opcode: OpIntBand, Name: "IntBand", Deprecated: true, Fields: []Field{{Name: "Arg1", Kind: FieldTerm}, {Name: "Arg2", Kind: FieldTerm}, {Name: "Arg3", Kind: FieldTerm}, {Name: "Arg4", Kind: FieldTerm}}},
	OpIntBor: {Opcode: OpIntBor, Name: "IntBor", Deprecated: true, Fields: []Field{{Name: "Arg1", Kind: FieldTerm}, {Name: "Arg2", Kind: FieldTerm}, {Name: "Arg3", Kind: FieldTerm}, {Name: "Arg4", Kind: FieldTerm}}},
	OpIntBxor: {Opcode: OpIntBxor, Name: "IntBxor", Deprecated: true, Fields: []Field{{Name: "Arg1", Kind: FieldTerm}, {Name: "Arg2", Kind: FieldTerm}, {Name: "Arg3", Kind: FieldTerm}, {Name: "Arg4", Kind: FieldTerm}}},
	OpIntBsl: {Opcode: OpIntBsl, Name: "IntBsl", Deprecated: true, Fields: []Field{{Name: "Arg1", Kind: FieldTerm}, {Name: "Arg2", Kind: FieldTerm}, {Name: "Arg3", Kind: FieldTerm}, {Name: "Arg4", Kind: FieldTerm}}},
	OpIntBsr: {Opcode: OpIntBsr, Name: "IntBsr", Deprecated: true, Fields: []Field{{Name: "Arg1", Kind: FieldTerm}, {Name: "Arg2", Kind: FieldTerm}, {Name: "Arg3", Kind: FieldTerm}, {Name: "Arg4", Kind: FieldTerm}}},
	OpIntBnot: {Opcode: OpIntBnot, Name: "IntBnot", Deprecated: true, Fields: []Field{{Name: "Arg1", Kind: FieldTerm}, {Name: "Arg2", Kind: FieldTerm}, {Name: "Arg3", Kind: FieldTerm}}},
	OpIsLt: {Opcode: OpIsLt, Name: "IsLt", Deprecated: false, Fields: []Field{{Name: "Arg1", Kind: FieldTerm}, {Name: "Arg2", Kind: FieldTerm}, {Name: "Arg3", Kind: FieldTerm}}},
	OpIsGe: {Opcode: OpIsGe, Name: "IsGe", Deprecated: false, Fields: []Field{{Name: "Arg1", Kind: FieldTerm}, {Name: "Arg2", Kind: FieldTerm}, {Name: "Arg3", Kind: FieldTerm}}},
	OpIsEq: {Opcode: OpIsEq, Name: "IsEq", Deprecated: false, Fields: []Field{{Name: "Arg1", Kind: FieldTerm}, {Name: "Arg2", Kind: FieldTerm}, {Name: "Arg3", Kind: FieldTerm}}},
	OpIsNe: {Opcode: OpIsNe, Name: "IsNe", Deprecated: false, Fields: []Field{{Name: "Arg1", Kind: FieldTerm}, {Name: "Arg2", Kind: FieldTerm}, {Name: "Arg3", Kind: FieldTerm}}},
	OpIsEqExact: {Opcode: OpIsEqExact, Name: "IsEqExact", Deprecated: false, Fields: []Field{{Name: "Label", Kind: FieldLabel}, {Name: "Arg1", Kind: FieldTerm}, {Name: "Arg2", Kind: FieldTerm}}},
	OpIsNeExact: {Opcode: OpIsNeExact, Name: "IsNeExact", Deprecated: false, Fields: []Field{{Name: "Label", Kind: FieldLabel}, {Name: "Arg1", Kind: FieldTerm}, {Name: "Arg2", Kind: FieldTerm}}},
	OpIsInteger: {Opcode: OpIsInteger, Name: "IsInteger", Deprecated: false, Fields: []Field{{Name: "Label", Kind: FieldLabel}, {Name: "Arg1", Kind: FieldTerm}}},
	OpIsFloat: {Opcode: OpIsFloat, Name: "IsFloat", Deprecated: false, Fields: []Field{{Name: "Label", Kind: FieldLabel}, {Name: "Arg1", Kind: FieldTerm}}},
	OpIsNumber: {Opcode: OpIsNumber, Name: "IsNumber", Deprecated: false, Fields: []Field{{Name: "Label", Kind: FieldLabel}, {Name: "Arg1", Kind: FieldTerm}}},
	OpIsAtom: {Opcode: OpIsAtom, Name: "IsAtom", Deprecated: false, Fields: []Field{{Name: "Label", Kind: FieldLabel}, {Name: "Arg1", Kind: FieldTerm}}},
	OpIsPid: {Opcode: OpIsPid, Name: "IsPid", Deprecated: false, Fields: []Field{{Name: "Label", Kind: FieldLabel}, {Name: "Arg1", Kind: FieldTerm}}},
	OpIsReference: {Opcode: OpIsReference, Name: "IsReference", Deprecated: false, Fields: []Field{{Name: "Label", Kind: FieldLabel}, {Name: "Arg1", Kind: FieldTerm}}},
	OpIsPort: {Opcode: OpIsPort, Name: "IsPort", Deprecated: false, Fields: []Field{{Name: "Label", Kind: FieldLabel}, {Name: "Arg1", Kind: FieldTerm}}},
	OpIsNil: {Opcode: OpIsNil, Name: "IsNil", Deprecated: false, Fields: []Field{{Name: "Label", Kind: FieldLabel}, {Name: "Arg1", Kind: FieldTerm}}},
	OpIsBinary: {Opcode: OpIsBinary, Name: "IsBinary", Deprecated: false, Fields: []Field{{Name: "Label", Kind: FieldLabel}, {Name: "Arg1", Kind: FieldTerm}}},
	OpIsConstant: {Opcode: OpIsConstant, Name: "IsConstant", Deprecated: true, Fields: []Field{{Name: "Label", Kind: FieldLabel}, {Name: "Arg1", Kind: FieldTerm}}},
	OpIsList: {Opcode: OpIsList, Name: "IsList", Deprecated: false, Fields: []Field{{Name: "Label", Kind: FieldLabel}, {Name: "Arg1", Kind: FieldTerm}}},
	OpIsNonemptyList: {Opcode: OpIsNonemptyList, Name: "IsNonemptyList", Deprecated: false, Fields: []Field{{Name: "Label", Kind: FieldLabel}, {Name: "Arg1", Kind: FieldTerm}}},
	OpIsTuple: {Opcode: OpIsTuple, Name: "IsTuple", Deprecated: false, Fields: []Field{{Name: "Label", Kind: FieldLabel}, {Name: "Arg1", Kind: FieldTerm}}},
	OpTestArity: {Opcode: OpTestArity, Name: "TestArity", Deprecated: false, Fields: []Field{{Name: "Label", Kind: FieldLabel}, {Name: "Arg1", Kind: FieldTerm}, {Name: "Arity", Kind: FieldUsize}}},
	OpSelectVal: {Opcode: OpSelectVal, Name: "SelectVal", Deprecated: false, Fields: []Field{{Name: "Arg", Kind: FieldTerm}, {Name: "FailLabel", Kind: FieldLabel}, {Name: "Destinations", Kind: FieldList}}},
	OpSelectTupleArity: {Opcode: OpSelectTupleArity, Name: "SelectTupleArity", Deprecated: false, Fields: []Field{{Name: "Arg1", Kind: FieldTerm}, {Name: "Arg2", Kind: FieldTerm}, {Name: "Arg3", Kind: FieldTerm}}},
	OpJump: {Opcode: OpJump, Name: "Jump", Deprecated: false, Fields: []Field{{Name: "Label", Kind: FieldLabel}}},
	OpCatch: {Opcode: OpCatch, Name: "Catch", Deprecated: false, Fields: []Field{{Name: "Arg1", Kind: FieldTerm}, {Name: "Arg2", Kind: FieldTerm}}},
	OpCatchEnd: {Opcode: OpCatchEnd, Name: "CatchEnd", Deprecated: false, Fields: []Field{{Name: "Arg1", Kind: FieldTerm}}},
	OpMove: {Opcode: OpMove, Name: "Move", Deprecated: false, Fields: []Field{{Name: "Src", Kind: FieldTerm}, {Name: "Dst", Kind: FieldRegister}}},
	OpGetList: {Opcode: OpGetList, Name: "GetList", Deprecated: false, Fields: []Field{{Name: "Source", Kind: FieldTerm}, {Name: "Head", Kind: FieldRegister}, {Name: "Tail", Kind: FieldRegister}}},
	OpGetTupleElement: {Opcode: OpGetTupleElement, Name: "GetTupleElement", Deprecated: false, Fields: []Field{{Name: "Source", Kind: FieldRegister}, {Name: "Element", Kind: FieldUsize}, {Name: "Destination", Kind: FieldRegister}}},
	OpSetTupleElement: {Opcode: OpSetTupleElement, Name: "SetTupleElement", Deprecated: false, Fields: []Field{{Name: "Arg1", Kind: FieldTerm}, {Name: "Arg2", Kind: FieldTerm}, {Name: "Arg3", Kind: FieldTerm}}},
	OpPutString: {Opcode: OpPutString, Name: "PutString", Deprecated: true, Fields: []Field{{Name: "Arg1", Kind: FieldTerm}, {Name: "Arg2", Kind: FieldTerm}, {Name: "Arg3", Kind: FieldTerm}}},
	OpPutList: {Opcode: OpPutList, Name: "PutList", Deprecated: false, Fields: []Field{{Name: "Head", Kind: FieldTerm}, {Name: "Tail", Kind: FieldTerm}, {Name: "Destination", Kind: FieldRegister}}},
	OpPutTuple: {Opcode: OpPutTuple, Name: "PutTuple", Deprecated: false, Fields: []Field{{Name: "Arg1", Kind: FieldTerm}, {Name: "Arg2", Kind: FieldTerm}}},
	OpPut: {Opcode: OpPut, Name: "Put", Deprecated: false, Fields: []Field{{Name: "Arg1", Kind: FieldTerm}}},
	OpBadmatch: {Opcode: OpBadmatch, Name: "Badmatch", Deprecated: false, Fields: []Field{{Name: "Arg1", Kind: FieldTerm}}},
	OpIfEnd: {Opcode: OpIfEnd, Name: "IfEnd", Deprecated: false, Fields: []Field{}},
	OpCaseEnd: {Opcode: OpCaseEnd, Name: "CaseEnd", Deprecated: false, Fields: []Field{{Name: "Arg1", Kind: FieldTerm}}},
	OpCallFun: {Opcode: OpCallFun, Name: "CallFun", Deprecated: false, Fields: []Field{{Name: "Arg1", Kind: FieldTerm}}},
	OpMakeFun: {Opcode: OpMakeFun, Name: "MakeFun", Deprecated: true, Fields: []Field{{Name: "Arg1", Kind: FieldTerm}, {Name: "Arg2", Kind: FieldTerm}, {Name: "Arg3", Kind: FieldTerm}}},
	OpIsFunction: {Opcode: OpIsFunction, Name: "IsFunction", Deprecated: false, Fields: []Field{{Name: "Arg1", Kind: FieldTerm}, {Name: "Arg2", Kind: FieldTerm}}},
	OpCallExtOnly: {Opcode: OpCallExtOnly, Name: "CallExtOnly", Deprecated: false, Fields: []Field{{Name: "Arity", Kind: FieldUsize}, {Name: "Destination", Kind: FieldUsize}}},
	OpBsStartMatch: {Opcode: OpBsStartMatch, Name: "BsStartMatch", Deprecated: true, Fields: []Field{{Name: "Arg1", Kind: FieldTerm}, {Name: "Arg2", Kind: FieldTerm}}},
	OpBsGetInteger: {Opcode: OpBsGetInteger, Name: "BsGetInteger", Deprecated: true, Fields: []Field{{Name: "Arg1", Kind: FieldTerm}, {Name: "Arg2", Kind: FieldTerm}, {Name: "Arg3", Kind: FieldTerm}, {Name: "Arg4", Kind: FieldTerm}, {Name: "Arg5", Kind: FieldTerm}}},
	OpBsGetFloat: {Opcode: OpBsGetFloat, Name: "BsGetFloat", Deprecated: true, Fields: []Field{{Name: "Arg1", Kind: FieldTerm}, {Name: "Arg2", Kind: FieldTerm}, {Name: "Arg3", Kind: FieldTerm}, {Name: "Arg4", Kind: FieldTerm}, {Name: "Arg5", Kind: FieldTerm}}},
	OpBsGetBinary: {Opcode: OpBsGetBinary, Name: "BsGetBinary", Deprecated: true, Fields: []Field{{Name: "Arg1", Kind: FieldTerm}, {Name: "Arg2", Kind: FieldTerm}, {Name: "Arg3", Kind: FieldTerm}, {Name: "Arg4", Kind: FieldTerm}, {Name: "Arg5", Kind: FieldTerm}}},
	OpBsSkipBits: {Opcode: OpBsSkipBits, Name: "BsSkipBits", Deprecated: false, Fields: []Field{{Name: "Arg1", Kind: FieldTerm}, {Name: "Arg2", Kind: FieldTerm}, {Name: "Arg3", Kind: FieldTerm}, {Name: "Arg4", Kind: FieldTerm}}},
	OpBsTestTail: {Opcode: OpBsTestTail, Name: "BsTestTail", Deprecated: true, Fields: []Field{{Name: "Arg1", Kind: FieldTerm}, {Name: "Arg2", Kind: FieldTerm}}},
	OpBsSave: {Opcode: OpBsSave, Name: "BsSave", Deprecated: false, Fields: []Field{{Name: "Arg1", Kind: FieldTerm}}},
	OpBsRestore: {Opcode: OpBsRestore, Name: "BsRestore", Deprecated: true, Fields: []Field{{Name: "Arg1", Kind: FieldTerm}}},
	OpBsInit: {Opcode: OpBsInit, Name: "BsInit", Deprecated: true, Fields: []Field{{Name: "Arg1", Kind: FieldTerm}, {Name: "Arg2", Kind: FieldTerm}}},
	OpBsFinal: {Opcode: OpBsFinal, Name: "BsFinal", Deprecated: true, Fields: []Field{{Name: "Arg1", Kind: FieldTerm}, {Name: "Arg2", Kind: FieldTerm}}},
	OpBsPutInteger: {Opcode: OpBsPutInteger, Name: "BsPutInteger", Deprecated: false, Fields: []Field{{Name: "Arg1", Kind: FieldTerm}, {Name: "Arg2", Kind: FieldTerm}, {Name: "Arg3", Kind: FieldTerm}, {Name: "Arg4", Kind: FieldTerm}, {Name: "Arg5", Kind: FieldTerm}}},
	OpBsPutBinary: {Opcode: OpBsPutBinary, Name: "BsPutBinary", Deprecated: false, Fields: []Field{{Name: "Arg1", Kind: FieldTerm}, {Name: "Arg2", Kind: FieldTerm}, {Name: "Arg3", Kind: FieldTerm}, {Name: "Arg4", Kind: FieldTerm}, {Name: "Arg5", Kind: FieldTerm}}},
	OpBsPutFloat: {Opcode: OpBsPutFloat, Name: "BsPutFloat", Deprecated: false, Fields: []Field{{Name: "Arg1", Kind: FieldTerm}, {Name: "Arg2", Kind: FieldTerm}, {Name: "Arg3", Kind: FieldTerm}, {Name: "Arg4", Kind: FieldTerm}, {Name: "Arg5", Kind: FieldTerm}}},
	OpBsPutString: {Opcode: OpBsPutString, Name: "BsPutString", Deprecated: false, Fields: []Field{{Name: "Arg1", Kind: FieldTerm}, {Name: "Arg2", Kind: FieldTerm}}},
	OpBsNeedBuf: {Opcode: OpBsNeedBuf, Name: "BsNeedBuf", Deprecated: false, Fields: []Field{{Name: "Arg1", Kind: FieldTerm}}},
	OpFclearerror: {Opcode: OpFclearerror, Name: "Fclearerror", Deprecated: false, Fields: []Field{}},
	OpFcheckerror: {Opcode: OpFcheckerror, Name: "Fcheckerror", Deprecated: false, Fields: []Field{{Name: "Arg1", Kind: FieldTerm}}},
	OpFmove: {Opcode: OpFmove, Name: "Fmove", Deprecated: false, Fields: []Field{{Name: "Arg1", Kind: FieldTerm}, {Name: "Arg2", Kind: FieldTerm}}},
	OpFconv: {Opcode: OpFconv, Name: "Fconv", Deprecated: false, Fields: []Field{{Name: "Arg1", Kind: FieldTerm}, {Name: "Arg2", Kind: FieldTerm}}},
	OpFadd: {Opcode: OpFadd, Name: "Fadd", Deprecated: false, Fields: []Field{{Name: "Arg1", Kind: FieldTerm}, {Name: "Arg2", Kind: FieldTerm}, {Name: "Arg3", Kind: FieldTerm}, {Name: "Arg4", Kind: FieldTerm}}},
	OpFsub: {Opcode: OpFsub, Name: "Fsub", Deprecated: false, Fields: []Field{{Name: "Arg1", Kind: FieldTerm}, {Name: "Arg2", Kind: FieldTerm}, {Name: "Arg3", Kind: FieldTerm}, {Name: "Arg4", Kind: FieldTerm}}},
	OpFmul: {Opcode: OpFmul, Name: "Fmul", Deprecated: false, Fields: []Field{{Name: "Arg1", Kind: FieldTerm}, {Name: "Arg2", Kind: FieldTerm}, {Name: "Arg3", Kind: FieldTerm}, {Name: "Arg4", Kind: FieldTerm}}},
	OpFdiv: {Opcode: OpFdiv, Name: "Fdiv", Deprecated: false, Fields: []Field{{Name: "Arg1", Kind: FieldTerm}, {Name: "Arg2", Kind: FieldTerm}, {Name: "Arg3", Kind: FieldTerm}, {Name: "Arg4", Kind: FieldTerm}}},
	OpFnegate: {Opcode: OpFnegate, Name: "Fnegate", Deprecated: false, Fields: []Field{{Name: "Arg1", Kind: FieldTerm}, {Name: "Arg2", Kind: FieldTerm}, {Name: "Arg3", Kind: FieldTerm}}},
	OpMakeFun2: {Opcode: OpMakeFun2, Name: "MakeFun2", Deprecated: false, Fields: []Field{{Name: "Arg1", Kind: FieldTerm}}},
	OpTry: {Opcode: OpTry, Name: "Try", Deprecated: false, Fields: []Field{{Name: "Register", Kind: FieldRegister}, {Name: "Label", Kind: FieldLabel}}},
	OpTryEnd: {Opcode: OpTryEnd, Name: "TryEnd", Deprecated: false, Fields: []Field{{Name: "Register", Kind: FieldRegister}}},
	OpTryCase: {Opcode: OpTryCase, Name: "TryCase", Deprecated: false, Fields: []Field{{Name: "Register", Kind: FieldRegister}}},
	OpTryCaseEnd: {Opcode: OpTryCaseEnd, Name: "TryCaseEnd", Deprecated: false, Fields: []Field{{Name: "Arg1", Kind: FieldTerm}}},
	OpRaise: {Opcode: OpRaise, Name: "Raise", Deprecated: false, Fields: []Field{{Name: "Stacktrace", Kind: FieldTerm}, {Name: "ExcValue", Kind: FieldTerm}}},
	OpBsInit2: {Opcode: OpBsInit2, Name: "BsInit2", Deprecated: false, Fields: []Field{{Name: "Arg1", Kind: FieldTerm}, {Name: "Arg2", Kind: FieldTerm}, {Name: "Arg3", Kind: FieldTerm}, {Name: "Arg4", Kind: FieldTerm}, {Name: "Arg5", Kind: FieldTerm}, {Name: "Arg6", Kind: FieldTerm}}},
	OpBsBitsToBytes: {Opcode: OpBsBitsToBytes, Name: "BsBitsToBytes", Deprecated: true, Fields: []Field{{Name: "Arg1", Kind: FieldTerm}, {Name: "Arg2", Kind: FieldTerm}, {Name: "Arg3", Kind: FieldTerm}}},
	OpBsAdd: {Opcode: OpBsAdd, Name: "BsAdd", Deprecated: false, Fields: []Field{{Name: "Arg1", Kind: FieldTerm}, {Name: "Arg2", Kind: FieldTerm}, {Name: "Arg3", Kind: FieldTerm}, {Name: "Arg4", Kind: FieldTerm}, {Name: "Arg5", Kind: FieldTerm}}},
	OpApply: {Opcode: OpApply, Name: "Apply", Deprecated: false, Fields: []Field{{Name: "Arg1", Kind: FieldTerm}}},
	OpApplyLast: {Opcode: OpApplyLast, Name: "ApplyLast", Deprecated: false, Fields: []Field{{Name: "Arg1", Kind: FieldTerm}, {Name: "Arg2", Kind: FieldTerm}}},
	OpIsBoolean: {Opcode: OpIsBoolean, Name: "IsBoolean", Deprecated: false, Fields: []Field{{Name: "Arg1", Kind: FieldTerm}, {Name: "Arg2", Kind: FieldTerm}}},
	OpIsFunction2: {Opcode: OpIsFunction2, Name: "IsFunction2", Deprecated: false, Fields: []Field{{Name: "Arg1", Kind: FieldTerm}, {Name: "Arg2", Kind: FieldTerm}, {Name: "Arg3", Kind: FieldTerm}}},
	OpBsStartMatch2: {Opcode: OpBsStartMatch2, Name: "BsStartMatch2", Deprecated: false, Fields: []Field{{Name: "Arg1", Kind: FieldTerm}, {Name: "Arg2", Kind: FieldTerm}, {Name: "Arg3", Kind: FieldTerm}, {Name: "Arg4", Kind: FieldTerm}, {Name: "Arg5", Kind: FieldTerm}}},
	OpBsGetInteger2: {Opcode: OpBsGetInteger2, Name: "BsGetInteger2", Deprecated: false, Fields: []Field{{Name: "Arg1", Kind: FieldTerm}, {Name: "Arg2", Kind: FieldTerm}, {Name: "Arg3", Kind: FieldTerm}, {Name: "Arg4", Kind: FieldTerm}, {Name: "Arg5", Kind: FieldTerm}, {Name: "Arg6", Kind: FieldTerm}, {Name: "Arg7", Kind: FieldTerm}}},
	OpBsGetFloat2: {Opcode: OpBsGetFloat2, Name: "BsGetFloat2", Deprecated: false, Fields: []Field{{Name: "Arg1", Kind: FieldTerm}, {Name: "Arg2", Kind: FieldTerm}, {Name: "Arg3", Kind: FieldTerm}, {Name: "Arg4", Kind: FieldTerm}, {Name: "Arg5", Kind: FieldTerm}, {Name: "Arg6", Kind: FieldTerm}, {Name: "Arg7", Kind: FieldTerm}}},
	OpBsGetBinary2: {Opcode: OpBsGetBinary2, Name: "BsGetBinary2", Deprecated: false, Fields: []Field{{Name: "Arg1", Kind: FieldTerm}, {Name: "Arg2", Kind: FieldTerm}, {Name: "Arg3", Kind: FieldTerm}, {Name: "Arg4", Kind: FieldTerm}, {Name: "Arg5", Kind: FieldTerm}, {Name: "Arg6", Kind: FieldTerm}, {Name: "Arg7", Kind: FieldTerm}}},
	OpBsSkipBits2: {Opcode: OpBsSkipBits2, Name: "BsSkipBits2", Deprecated: false, Fields: []Field{{Name: "Arg1", Kind: FieldTerm}, {Name: "Arg2", Kind: FieldTerm}, {Name: "Arg3", Kind: FieldTerm}, {Name: "Arg4", Kind: FieldTerm}, {Name: "Arg5", Kind: FieldTerm}}},
	OpBsTestTail2: {Opcode: OpBsTestTail2, Name: "BsTestTail2", Deprecated: false, Fields: []Field{{Name: "Arg1", Kind: FieldTerm}, {Name: "Arg2", Kind: FieldTerm}, {Name: "Arg3", Kind: FieldTerm}}},
	OpBsSave2: {Opcode: OpBsSave2, Name: "BsSave2", Deprecated: false, Fields: []Field{{Name: "Arg1", Kind: FieldTerm}, {Name: "Arg2", Kind: FieldTerm}}},
	OpBsRestore2: {Opcode: OpBsRestore2, Name: "BsRestore2", Deprecated: false, Fields: []Field{{Name: "Arg1", Kind: FieldTerm}, {Name: "Arg2", Kind: FieldTerm}}},
	OpGcBif1: {Opcode: OpGcBif1, Name: "GcBif1", Deprecated: false, Fields: []Field{{Name: "Arg1", Kind: FieldTerm}, {Name: "Arg2", Kind: FieldTerm}, {Name: "Arg3", Kind: FieldTerm}, {Name: "Arg4", Kind: FieldTerm}, {Name: "Arg5", Kind: FieldTerm}}},
	OpGcBif2: {Opcode: OpGcBif2, Name: "GcBif2", Deprecated: false, Fields: []Field{{Name: "Arg1", Kind: FieldTerm}, {Name: "Arg2", Kind: FieldTerm}, {Name: "Arg3", Kind: FieldTerm}, {Name: "Arg4", Kind: FieldTerm}, {Name: "Arg5", Kind: FieldTerm}, {Name: "Arg6", Kind: FieldTerm}}},
	OpBsFinal2: {Opcode: OpBsFinal2, Name: "BsFinal2", Deprecated: true, Fields: []Field{{Name: "Arg1", Kind: FieldTerm}, {Name: "Arg2", Kind: FieldTerm}}},
	OpBsBitsToBytes2: {Opcode: OpBsBitsToBytes2, Name: "BsBitsToBytes2", Deprecated: true, Fields: []Field{{Name: "Arg1", Kind: FieldTerm}, {Name: "Arg2", Kind: FieldTerm}}},
	OpPutLiteral: {Opcode: OpPutLiteral, Name: "PutLiteral", Deprecated: true, Fields: []Field{{Name: "Arg1", Kind: FieldTerm}, {Name: "Arg2", Kind: FieldTerm}}},
	OpIsBitstr: {Opcode: OpIsBitstr, Name: "IsBitstr", Deprecated: false, Fields: []Field{{Name: "Arg1", Kind: FieldTerm}, {Name: "Arg2", Kind: FieldTerm}}},
	OpBsContextToBinary: {Opcode: OpBsContextToBinary, Name: "BsContextToBinary", Deprecated: false, Fields: []Field{{Name: "Arg1", Kind: FieldTerm}}},
	OpBsTestUnit: {Opcode: OpBsTestUnit, Name: "BsTestUnit", Deprecated: false, Fields: []Field{{Name: "Arg1", Kind: FieldTerm}, {Name: "Arg2", Kind: FieldTerm}, {Name: "Arg3", Kind: FieldTerm}}},
	OpBsMatchString: {Opcode: OpBsMatchString, Name: "BsMatchString", Deprecated: false, Fields: []Field{{Name: "Arg1", Kind: FieldTerm}, {Name: "Arg2", Kind: FieldTerm}, {Name: "Arg3", Kind: FieldTerm}, {Name: "Arg4", Kind: FieldTerm}}},
	OpBsInitWritable: {Opcode: OpBsInitWritable, Name: "BsInitWritable", Deprecated: false, Fields: []Field{}},
	OpBsAppend: {Opcode: OpBsAppend, Name: "BsAppend", Deprecated: false, Fields: []Field{{Name: "Arg1", Kind: FieldTerm}, {Name: "Arg2", Kind: FieldTerm}, {Name: "Arg3", Kind: FieldTerm}, {Name: "Arg4", Kind: FieldTerm}, {Name: "Arg5", Kind: FieldTerm}, {Name: "Arg6", Kind: FieldTerm}, {Name: "Arg7", Kind: FieldTerm}, {Name: "Arg8", Kind: FieldTerm}}},
	OpBsPrivateAppend: {Opcode: OpBsPrivateAppend, Name: "BsPrivateAppend", Deprecated: false, Fields: []Field{{Name: "Arg1", Kind: FieldTerm}, {Name: "Arg2", Kind: FieldTerm}, {Name: "Arg3", Kind: FieldTerm}, {Name: "Arg4", Kind: FieldTerm}, {Name: "Arg5", Kind: FieldTerm}, {Name: "Arg6", Kind: FieldTerm}}},
	OpTrim: {Opcode: OpTrim, Name: "Trim", Deprecated: false, Fields: []Field{{Name: "Arg1", Kind: FieldTerm}, {Name: "Arg2", Kind: FieldTerm}}},
	OpBsInitBits: {Opcode: OpBsInitBits, Name: "BsInitBits", Deprecated: false, Fields: []Field{{Name: "Arg1", Kind: FieldTerm}, {Name: "Arg2", Kind: FieldTerm}, {Name: "Arg3", Kind: FieldTerm}, {Name: "Arg4", Kind: FieldTerm}, {Name: "Arg5", Kind: FieldTerm}, {Name: "Arg6", Kind: FieldTerm}}},
	OpBsGetUtf8: {Opcode: OpBsGetUtf8, Name: "BsGetUtf8", Deprecated: false, Fields: []Field{{Name: "Arg1", Kind: FieldTerm}, {Name: "Arg2", Kind: FieldTerm}, {Name: "Arg3", Kind: FieldTerm}, {Name: "Arg4", Kind: FieldTerm}, {Name: "Arg5", Kind: FieldTerm}}},
	OpBsSkipUtf8: {Opcode: OpBsSkipUtf8, Name: "BsSkipUtf8", Deprecated: false, Fields: []Field{{Name: "Arg1", Kind: FieldTerm}, {Name: "Arg2", Kind: FieldTerm}, {Name: "Arg3", Kind: FieldTerm}, {Name: "Arg4", Kind: FieldTerm}}},
	OpBsGetUtf16: {Opcode: OpBsGetUtf16, Name: "BsGetUtf16", Deprecated: false, Fields: []Field{{Name: "Arg1", Kind: FieldTerm}, {Name: "Arg2", Kind: FieldTerm}, {Name: "Arg3", Kind: FieldTerm}, {Name: "Arg4", Kind: FieldTerm}, {Name: "Arg5", Kind: FieldTerm}}},
	OpBsSkipUtf16: {Opcode: OpBsSkipUtf16, Name: "BsSkipUtf16", Deprecated: false, Fields: []Field{{Name: "Arg1", Kind: FieldTerm}, {Name: "Arg2", Kind: FieldTerm}, {Name: "Arg3", Kind: FieldTerm}, {Name: "Arg4", Kind: FieldTerm}}},
	OpBsGetUtf32: {Opcode: OpBsGetUtf32, Name: "BsGetUtf32", Deprecated: false, Fields: []Field{{Name: "Arg1", Kind: FieldTerm}, {Name: "Arg2", Kind: FieldTerm}, {Name: "Arg3", Kind: FieldTerm}, {Name: "Arg4", Kind: FieldTerm}, {Name: "Arg5", Kind: FieldTerm}}},
	OpBsSkipUtf32: {Opcode: OpBsSkipUtf32, Name: "BsSkipUtf32", Deprecated: false, Fields: []Field{{Name: "Arg1", Kind: FieldTerm}, {Name: "Arg2", Kind: FieldTerm}, {Name: "Arg3", Kind: FieldTerm}, {Name: "Arg4", Kind: FieldTerm}}},
	OpBsUtf8Size: {Opcode: OpBsUtf8Size, Name: "BsUtf8Size", Deprecated: false, Fields: []Field{{Name: "Arg1", Kind: FieldTerm}, {Name: "Arg2", Kind: FieldTerm}, {Name: "Arg3", Kind: FieldTerm}}},
	OpBsPutUtf8: {Opcode: OpBsPutUtf8, Name: "BsPutUtf8", Deprecated: false, Fields: []Field{{Name: "Arg1", Kind: FieldTerm}, {Name: "Arg2", Kind: FieldTerm}, {Name: "Arg3", Kind: FieldTerm}}},
	OpBsUtf16Size: {Opcode: OpBsUtf16Size, Name: "BsUtf16Size", Deprecated: false, Fields: []Field{{Name: "Arg1", Kind: FieldTerm}, {Name: "Arg2", Kind: FieldTerm}, {Name: "Arg3", Kind: FieldTerm}}},
	OpBsPutUtf16: {Opcode: OpBsPutUtf16, Name: "BsPutUtf16", Deprecated: false, Fields: []Field{{Name: "Arg1", Kind: FieldTerm}, {Name: "Arg2", Kind: FieldTerm}, {Name: "Arg3", Kind: FieldTerm}}},
	OpBsPutUtf32: {Opcode: OpBsPutUtf32, Name: "BsPutUtf32", Deprecated: false, Fields: []Field{{Name: "Arg1", Kind: FieldTerm}, {Name: "Arg2", Kind: FieldTerm}, {Name: "Arg3", Kind: FieldTerm}}},
	OpOnLoad: {Opcode: OpOnLoad, Name: "OnLoad", Deprecated: false, Fields: []Field{}},
	OpRecvMark: {Opcode: OpRecvMark, Name: "RecvMark", Deprecated: false, Fields: []Field{{Name: "Arg1", Kind: FieldTerm}}},
	OpRecvSet: {Opcode: OpRecvSet, Name: "RecvSet", Deprecated: false, Fields: []Field{{Name: "Arg1", Kind: FieldTerm}}},
	OpGcBif3: {Opcode: OpGcBif3, Name: "GcBif3", Deprecated: false, Fields: []Field{{Name: "Arg1", Kind: FieldTerm}, {Name: "Arg2", Kind: FieldTerm}, {Name: "Arg3", Kind: FieldTerm}, {Name: "Arg4", Kind: FieldTerm}, {Name: "Arg5", Kind: FieldTerm}, {Name: "Arg6", Kind: FieldTerm}, {Name: "Arg7", Kind: FieldTerm}}},
	OpLine: {Opcode: OpLine, Name: "Line", Deprecated: false, Fields: []Field{{Name: "Literal", Kind: FieldUsize}}},
	OpPutMapAssoc: {Opcode: OpPutMapAssoc, Name: "PutMapAssoc", Deprecated: false, Fields: []Field{{Name: "Arg1", Kind: FieldTerm}, {Name: "Arg2", Kind: FieldTerm}, {Name: "Arg3", Kind: FieldTerm}, {Name: "Arg4", Kind: FieldTerm}, {Name: "Arg5", Kind: FieldTerm}}},
	OpPutMapExact: {Opcode: OpPutMapExact, Name: "PutMapExact", Deprecated: false, Fields: []Field{{Name: "Arg1", Kind: FieldTerm}, {Name: "Arg2", Kind: FieldTerm}, {Name: "Arg3", Kind: FieldTerm}, {Name: "Arg4", Kind: FieldTerm}, {Name: "Arg5", Kind: FieldTerm}}},
	OpIsMap: {Opcode: OpIsMap, Name: "IsMap", Deprecated: false, Fields: []Field{{Name: "Arg1", Kind: FieldTerm}, {Name: "Arg2", Kind: FieldTerm}}},
	OpHasMapFields: {Opcode: OpHasMapFields, Name: "HasMapFields", Deprecated: false, Fields: []Field{{Name: "Arg1", Kind: FieldTerm}, {Name: "Arg2", Kind: FieldTerm}, {Name: "Arg3", Kind: FieldTerm}}},
	OpGetMapElement: {Opcode: OpGetMapElement, Name: "GetMapElement", Deprecated: false, Fields: []Field{{Name: "Arg1", Kind: FieldTerm}, {Name: "Arg2", Kind: FieldTerm}, {Name: "Arg3", Kind: FieldTerm}}},
	OpIsTaggedTuple: {Opcode: OpIsTaggedTuple, Name: "IsTaggedTuple", Deprecated: false, Fields: []Field{{Name: "Label", Kind: FieldLabel}, {Name: "Register", Kind: FieldRegister}, {Name: "Arity", Kind: FieldUsize}, {Name: "Atom", Kind: FieldAtom}}},
	OpBuildStacktrace: {Opcode: OpBuildStacktrace, Name: "BuildStacktrace", Deprecated: false, Fields: []Field{}},
	OpRawRaise: {Opcode: OpRawRaise, Name: "RawRaise", Deprecated: false, Fields: []Field{}},
	OpGetHd: {Opcode: OpGetHd, Name: "GetHd", Deprecated: false, Fields: []Field{{Name: "Arg1", Kind: FieldTerm}, {Name: "Arg2", Kind: FieldTerm}}},
	OpGetTl: {Opcode: OpGetTl, Name: "GetTl", Deprecated: false, Fields: []Field{{Name: "Arg1", Kind: FieldTerm}, {Name: "Arg2", Kind: FieldTerm}}},
	OpPutTuple2: {Opcode: OpPutTuple2, Name: "PutTuple2", Deprecated: false, Fields: []Field{{Name: "Destination", Kind: FieldRegister}, {Name: "Elements", Kind: FieldList}}},
	OpBsGetTail: {Opcode: OpBsGetTail, Name: "BsGetTail", Deprecated: false, Fields: []Field{{Name: "Context", Kind: FieldTerm}, {Name: "Destination", Kind: FieldRegister}, {Name: "Live", Kind: FieldUsize}}},
	OpBsStartMatch3: {Opcode: OpBsStartMatch3, Name: "BsStartMatch3", Deprecated: false, Fields: []Field{{Name: "Fail", Kind: FieldLabel}, {Name: "Bin", Kind: FieldTerm}, {Name: "Live", Kind: FieldUsize}, {Name: "Destination", Kind: FieldRegister}}},
	OpBsGetPosition: {Opcode: OpBsGetPosition, Name: "BsGetPosition", Deprecated: false, Fields: []Field{{Name: "Context", Kind: FieldTerm}, {Name: "Destination", Kind: FieldRegister}, {Name: "Live", Kind: FieldUsize}}},
	OpBsSetPosition: {Opcode: OpBsSetPosition, Name: "BsSetPosition", Deprecated: false, Fields: []Field{{Name: "Context", Kind: FieldTerm}, {Name: "Position", Kind: FieldTerm}}},
	OpSwap: {Opcode: OpSwap, Name: "Swap", Deprecated: false, Fields: []Field{{Name: "Arg1", Kind: FieldTerm}, {Name: "Arg2", Kind: FieldTerm}}},
	OpBsStartMatch4: {Opcode: OpBsStartMatch4, Name: "BsStartMatch4", Deprecated: false, Fields: []Field{{Name: "Arg1", Kind: FieldTerm}, {Name: "Arg2", Kind: FieldTerm}, {Name: "Arg3", Kind: FieldTerm}, {Name: "Arg4", Kind: FieldTerm}}},
	OpMakeFun3: {Opcode: OpMakeFun3, Name: "MakeFun3", Deprecated: false, Fields: []Field{{Name: "Arg1", Kind: FieldTerm}, {Name: "Arg2", Kind: FieldTerm}, {Name: "Arg3", Kind: FieldTerm}}},
	OpInitYregs: {Opcode: OpInitYregs, Name: "InitYregs", Deprecated: false, Fields: []Field{{Name: "Registers", Kind: FieldYRegisterList}}},
	OpRecvMarkerBind: {Opcode: OpRecvMarkerBind, Name: "RecvMarkerBind", Deprecated: false, Fields: []Field{{Name: "Arg1", Kind: FieldTerm}, {Name: "Arg2", Kind: FieldTerm}}},
	OpRecvMarkerClear: {Opcode: OpRecvMarkerClear, Name: "RecvMarkerClear", Deprecated: false, Fields: []Field{{Name: "Arg1", Kind: FieldTerm}}},
	OpRecvMarkerReserve: {Opcode: OpRecvMarkerReserve, Name: "RecvMarkerReserve", Deprecated: false, Fields: []Field{{Name: "Arg1", Kind: FieldTerm}}},
	OpRecvMarkerUse: {Opcode: OpRecvMarkerUse, Name: "RecvMarkerUse", Deprecated: false, Fields: []Field{{Name: "Arg1", Kind: FieldTerm}}},
	OpBsCreateBin: {Opcode: OpBsCreateBin, Name: "BsCreateBin", Deprecated: false, Fields: []Field{{Name: "Arg1", Kind: FieldTerm}, {Name: "Arg2", Kind: FieldTerm}, {Name: "Arg3", Kind: FieldTerm}, {Name: "Arg4", Kind: FieldTerm}, {Name: "Arg5", Kind: FieldTerm}, {Name: "Arg6", Kind: FieldTerm}}},
	OpCallFun2: {Opcode: OpCallFun2, Name: "CallFun2", Deprecated: false, Fields: []Field{{Name: "Arg1", Kind: FieldTerm}, {Name: "Arg2", Kind: FieldTerm}, {Name: "Arg3", Kind: FieldTerm}}},
	OpNifStart: {Opcode: OpNifStart, Name: "NifStart", Deprecated: false, Fields: []Field{}},
	OpBadrecord: {Opcode: OpBadrecord, Name: "Badrecord", Deprecated: false, Fields: []Field{{Name: "Arg1", Kind: FieldTerm}}},
}
