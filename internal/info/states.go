package info

const (
	SNull StateNum = iota

	SPlay
	SPlayRun1
	SPlayRun2
	SPlayRun3
	SPlayRun4
	SPlayAtk1
	SPlayAtk2
	SPlayPain
	SPlayPain2
	SPlayDie1
	SPlayDie2
	SPlayDie3
	SPlayDie4
	SPlayDie5
	SPlayDie6
	SPlayDie7
	SPlayXDie1
	SPlayXDie2
	SPlayXDie3
	SPlayXDie4
	SPlayXDie5
	SPlayXDie6
	SPlayXDie7
	SPlayXDie8
	SPlayXDie9

	SPossStnd
	SPossStnd2
	SPossRun1
	SPossRun2
	SPossRun3
	SPossRun4
	SPossRun5
	SPossRun6
	SPossRun7
	SPossRun8
	SPossAtk1
	SPossAtk2
	SPossAtk3
	SPossPain
	SPossPain2
	SPossDie1
	SPossDie2
	SPossDie3
	SPossDie4
	SPossDie5
	SPossXDie1
	SPossXDie2
	SPossXDie3
	SPossXDie4
	SPossXDie5
	SPossXDie6
	SPossXDie7
	SPossXDie8
	SPossXDie9

	STrooStnd
	STrooStnd2
	STrooRun1
	STrooRun2
	STrooRun3
	STrooRun4
	STrooRun5
	STrooRun6
	STrooRun7
	STrooRun8
	STrooAtk1
	STrooAtk2
	STrooAtk3
	STrooPain
	STrooPain2
	STrooDie1
	STrooDie2
	STrooDie3
	STrooDie4
	STrooDie5
	STrooXDie1
	STrooXDie2
	STrooXDie3
	STrooXDie4
	STrooXDie5
	STrooXDie6
	STrooXDie7
	STrooXDie8

	SSkullStnd
	SSkullStnd2
	SSkullRun1
	SSkullRun2
	SSkullAtk1
	SSkullAtk2
	SSkullAtk3
	SSkullAtk4
	SSkullPain
	SSkullPain2
	SSkullDie1
	SSkullDie2
	SSkullDie3
	SSkullDie4
	SSkullDie5
	SSkullDie6

	SBar1
	SBar2
	SBExp
	SBExp2
	SBExp3
	SBExp4
	SBExp5

	SRocket
	SExplode1
	SExplode2
	SExplode3

	SBFGShot
	SBFGShot2
	SBFGLand
	SBFGLand2
	SBFGLand3
	SBFGLand4
	SBFGLand5
	SBFGLand6

	STBall1
	STBall2
	STBallX1
	STBallX2
	STBallX3

	SPuff1
	SPuff2
	SPuff3
	SPuff4

	STrail1
	STrail2
	STrail3
	STrail4

	SBlood1
	SBlood2
	SBlood3

	STFog
	STFog2
	STFog3
	STFog4
	STFog5
	STFog6

	SIFog
	SIFog2
	SIFog3
	SIFog4
	SIFog5

	SClip
	SStim
	SMedi
	SArm1
	SArm1A
	SPinv
	SPinvB
	SPinvC
	SPinvD
	SPins
	SPinsB
	SPinsC
	SPinsD
	SSoul
	SSoulB
	SSoulC
	SSoulD

	NumStates
)

// States is the global state table.
var States = [NumStates]State{
	SNull: {SprTroo, 0, -1, ActionNone, SNull},

	SPlay:      {SprPlay, 0, -1, ActionNone, SNull},
	SPlayRun1:  {SprPlay, 0, 4, ActionNone, SPlayRun2},
	SPlayRun2:  {SprPlay, 1, 4, ActionNone, SPlayRun3},
	SPlayRun3:  {SprPlay, 2, 4, ActionNone, SPlayRun4},
	SPlayRun4:  {SprPlay, 3, 4, ActionNone, SPlayRun1},
	SPlayAtk1:  {SprPlay, 4, 12, ActionNone, SPlay},
	SPlayAtk2:  {SprPlay, 5, 6, ActionNone, SPlayAtk1},
	SPlayPain:  {SprPlay, 6, 4, ActionNone, SPlayPain2},
	SPlayPain2: {SprPlay, 6, 4, ActionPain, SPlay},
	SPlayDie1:  {SprPlay, 7, 10, ActionNone, SPlayDie2},
	SPlayDie2:  {SprPlay, 8, 10, ActionPlayerScream, SPlayDie3},
	SPlayDie3:  {SprPlay, 9, 10, ActionFall, SPlayDie4},
	SPlayDie4:  {SprPlay, 10, 10, ActionNone, SPlayDie5},
	SPlayDie5:  {SprPlay, 11, 10, ActionNone, SPlayDie6},
	SPlayDie6:  {SprPlay, 12, 10, ActionNone, SPlayDie7},
	SPlayDie7:  {SprPlay, 13, -1, ActionNone, SNull},
	SPlayXDie1: {SprPlay, 14, 5, ActionNone, SPlayXDie2},
	SPlayXDie2: {SprPlay, 15, 5, ActionXScream, SPlayXDie3},
	SPlayXDie3: {SprPlay, 16, 5, ActionFall, SPlayXDie4},
	SPlayXDie4: {SprPlay, 17, 5, ActionNone, SPlayXDie5},
	SPlayXDie5: {SprPlay, 18, 5, ActionNone, SPlayXDie6},
	SPlayXDie6: {SprPlay, 19, 5, ActionNone, SPlayXDie7},
	SPlayXDie7: {SprPlay, 20, 5, ActionNone, SPlayXDie8},
	SPlayXDie8: {SprPlay, 21, 5, ActionNone, SPlayXDie9},
	SPlayXDie9: {SprPlay, 22, -1, ActionNone, SNull},

	SPossStnd:  {SprPoss, 0, 10, ActionLook, SPossStnd2},
	SPossStnd2: {SprPoss, 1, 10, ActionLook, SPossStnd},
	SPossRun1:  {SprPoss, 0, 4, ActionChase, SPossRun2},
	SPossRun2:  {SprPoss, 0, 4, ActionChase, SPossRun3},
	SPossRun3:  {SprPoss, 1, 4, ActionChase, SPossRun4},
	SPossRun4:  {SprPoss, 1, 4, ActionChase, SPossRun5},
	SPossRun5:  {SprPoss, 2, 4, ActionChase, SPossRun6},
	SPossRun6:  {SprPoss, 2, 4, ActionChase, SPossRun7},
	SPossRun7:  {SprPoss, 3, 4, ActionChase, SPossRun8},
	SPossRun8:  {SprPoss, 3, 4, ActionChase, SPossRun1},
	SPossAtk1:  {SprPoss, 4, 10, ActionFaceTarget, SPossAtk2},
	SPossAtk2:  {SprPoss, 5, 8, ActionPosAttack, SPossAtk3},
	SPossAtk3:  {SprPoss, 4, 8, ActionNone, SPossRun1},
	SPossPain:  {SprPoss, 6, 3, ActionNone, SPossPain2},
	SPossPain2: {SprPoss, 6, 3, ActionPain, SPossRun1},
	SPossDie1:  {SprPoss, 7, 5, ActionNone, SPossDie2},
	SPossDie2:  {SprPoss, 8, 5, ActionScream, SPossDie3},
	SPossDie3:  {SprPoss, 9, 5, ActionFall, SPossDie4},
	SPossDie4:  {SprPoss, 10, 5, ActionNone, SPossDie5},
	SPossDie5:  {SprPoss, 11, -1, ActionNone, SNull},
	SPossXDie1: {SprPoss, 12, 5, ActionNone, SPossXDie2},
	SPossXDie2: {SprPoss, 13, 5, ActionXScream, SPossXDie3},
	SPossXDie3: {SprPoss, 14, 5, ActionFall, SPossXDie4},
	SPossXDie4: {SprPoss, 15, 5, ActionNone, SPossXDie5},
	SPossXDie5: {SprPoss, 16, 5, ActionNone, SPossXDie6},
	SPossXDie6: {SprPoss, 17, 5, ActionNone, SPossXDie7},
	SPossXDie7: {SprPoss, 18, 5, ActionNone, SPossXDie8},
	SPossXDie8: {SprPoss, 19, 5, ActionNone, SPossXDie9},
	SPossXDie9: {SprPoss, 20, -1, ActionNone, SNull},

	STrooStnd:  {SprTroo, 0, 10, ActionLook, STrooStnd2},
	STrooStnd2: {SprTroo, 1, 10, ActionLook, STrooStnd},
	STrooRun1:  {SprTroo, 0, 3, ActionChase, STrooRun2},
	STrooRun2:  {SprTroo, 0, 3, ActionChase, STrooRun3},
	STrooRun3:  {SprTroo, 1, 3, ActionChase, STrooRun4},
	STrooRun4:  {SprTroo, 1, 3, ActionChase, STrooRun5},
	STrooRun5:  {SprTroo, 2, 3, ActionChase, STrooRun6},
	STrooRun6:  {SprTroo, 2, 3, ActionChase, STrooRun7},
	STrooRun7:  {SprTroo, 3, 3, ActionChase, STrooRun8},
	STrooRun8:  {SprTroo, 3, 3, ActionChase, STrooRun1},
	STrooAtk1:  {SprTroo, 4, 8, ActionFaceTarget, STrooAtk2},
	STrooAtk2:  {SprTroo, 5, 8, ActionFaceTarget, STrooAtk3},
	STrooAtk3:  {SprTroo, 6, 6, ActionTroopAttack, STrooRun1},
	STrooPain:  {SprTroo, 7, 2, ActionNone, STrooPain2},
	STrooPain2: {SprTroo, 7, 2, ActionPain, STrooRun1},
	STrooDie1:  {SprTroo, 8, 8, ActionNone, STrooDie2},
	STrooDie2:  {SprTroo, 9, 8, ActionScream, STrooDie3},
	STrooDie3:  {SprTroo, 10, 6, ActionNone, STrooDie4},
	STrooDie4:  {SprTroo, 11, 6, ActionFall, STrooDie5},
	STrooDie5:  {SprTroo, 12, -1, ActionNone, SNull},
	STrooXDie1: {SprTroo, 13, 5, ActionNone, STrooXDie2},
	STrooXDie2: {SprTroo, 14, 5, ActionXScream, STrooXDie3},
	STrooXDie3: {SprTroo, 15, 5, ActionNone, STrooXDie4},
	STrooXDie4: {SprTroo, 16, 5, ActionFall, STrooXDie5},
	STrooXDie5: {SprTroo, 17, 5, ActionNone, STrooXDie6},
	STrooXDie6: {SprTroo, 18, 5, ActionNone, STrooXDie7},
	STrooXDie7: {SprTroo, 19, 5, ActionNone, STrooXDie8},
	STrooXDie8: {SprTroo, 20, -1, ActionNone, SNull},

	SSkullStnd:  {SprSkul, 0, 10, ActionLook, SSkullStnd2},
	SSkullStnd2: {SprSkul, 1, 10, ActionLook, SSkullStnd},
	SSkullRun1:  {SprSkul, 0, 6, ActionChase, SSkullRun2},
	SSkullRun2:  {SprSkul, 1, 6, ActionChase, SSkullRun1},
	SSkullAtk1:  {SprSkul, 2, 10, ActionFaceTarget, SSkullAtk2},
	SSkullAtk2:  {SprSkul, 3, 4, ActionSkullAttack, SSkullAtk3},
	SSkullAtk3:  {SprSkul, 2, 4, ActionNone, SSkullAtk4},
	SSkullAtk4:  {SprSkul, 3, 4, ActionNone, SSkullAtk3},
	SSkullPain:  {SprSkul, 4, 3, ActionNone, SSkullPain2},
	SSkullPain2: {SprSkul, 4, 3, ActionPain, SSkullRun1},
	SSkullDie1:  {SprSkul, 5, 6, ActionNone, SSkullDie2},
	SSkullDie2:  {SprSkul, 6, 6, ActionScream, SSkullDie3},
	SSkullDie3:  {SprSkul, 7, 6, ActionNone, SSkullDie4},
	SSkullDie4:  {SprSkul, 8, 6, ActionFall, SSkullDie5},
	SSkullDie5:  {SprSkul, 9, 6, ActionNone, SSkullDie6},
	SSkullDie6:  {SprSkul, 10, 6, ActionNone, SNull},

	SBar1:  {SprBar1, 0, 6, ActionNone, SBar2},
	SBar2:  {SprBar1, 1, 6, ActionNone, SBar1},
	SBExp:  {SprBexp, 0, 5, ActionNone, SBExp2},
	SBExp2: {SprBexp, 1, 5, ActionScream, SBExp3},
	SBExp3: {SprBexp, 2, 5, ActionNone, SBExp4},
	SBExp4: {SprBexp, 3, 10, ActionExplode, SBExp5},
	SBExp5: {SprBexp, 4, 10, ActionNone, SNull},

	SRocket:   {SprMisl, 0, 1, ActionNone, SRocket},
	SExplode1: {SprMisl, 1, 8, ActionExplode, SExplode2},
	SExplode2: {SprMisl, 2, 6, ActionNone, SExplode3},
	SExplode3: {SprMisl, 3, 4, ActionNone, SNull},

	SBFGShot:  {SprBfs1, 0, 4, ActionNone, SBFGShot2},
	SBFGShot2: {SprBfs1, 1, 4, ActionNone, SBFGShot},
	SBFGLand:  {SprBfe1, 0, 8, ActionNone, SBFGLand2},
	SBFGLand2: {SprBfe1, 1, 8, ActionNone, SBFGLand3},
	SBFGLand3: {SprBfe1, 2, 8, ActionBFGSpray, SBFGLand4},
	SBFGLand4: {SprBfe1, 3, 8, ActionNone, SBFGLand5},
	SBFGLand5: {SprBfe1, 4, 8, ActionNone, SBFGLand6},
	SBFGLand6: {SprBfe1, 5, 8, ActionNone, SNull},

	STBall1:  {SprBal1, 0, 4, ActionNone, STBall2},
	STBall2:  {SprBal1, 1, 4, ActionNone, STBall1},
	STBallX1: {SprBal1, 2, 6, ActionNone, STBallX2},
	STBallX2: {SprBal1, 3, 6, ActionNone, STBallX3},
	STBallX3: {SprBal1, 4, 6, ActionNone, SNull},

	SPuff1: {SprPuff, 0, 4, ActionNone, SPuff2},
	SPuff2: {SprPuff, 1, 4, ActionNone, SPuff3},
	SPuff3: {SprPuff, 2, 4, ActionNone, SPuff4},
	SPuff4: {SprPuff, 3, 4, ActionNone, SNull},

	STrail1: {SprPuff, 0, 4, ActionNone, STrail2},
	STrail2: {SprPuff, 1, 4, ActionNone, STrail3},
	STrail3: {SprPuff, 2, 4, ActionNone, STrail4},
	STrail4: {SprPuff, 3, 4, ActionNone, SNull},

	SBlood1: {SprBlud, 2, 8, ActionNone, SBlood2},
	SBlood2: {SprBlud, 1, 8, ActionNone, SBlood3},
	SBlood3: {SprBlud, 0, 8, ActionNone, SNull},

	STFog:  {SprTfog, 0, 6, ActionNone, STFog2},
	STFog2: {SprTfog, 1, 6, ActionNone, STFog3},
	STFog3: {SprTfog, 2, 6, ActionNone, STFog4},
	STFog4: {SprTfog, 3, 6, ActionNone, STFog5},
	STFog5: {SprTfog, 4, 6, ActionNone, STFog6},
	STFog6: {SprTfog, 5, 6, ActionNone, SNull},

	SIFog:  {SprIfog, 0, 6, ActionNone, SIFog2},
	SIFog2: {SprIfog, 1, 6, ActionNone, SIFog3},
	SIFog3: {SprIfog, 2, 6, ActionNone, SIFog4},
	SIFog4: {SprIfog, 3, 6, ActionNone, SIFog5},
	SIFog5: {SprIfog, 4, 6, ActionNone, SNull},

	SClip:  {SprClip, 0, -1, ActionNone, SNull},
	SStim:  {SprStim, 0, -1, ActionNone, SNull},
	SMedi:  {SprMedi, 0, -1, ActionNone, SNull},
	SArm1:  {SprArm1, 0, 6, ActionNone, SArm1A},
	SArm1A: {SprArm1, 1, 7, ActionNone, SArm1},
	SPinv:  {SprPinv, 0, 6, ActionNone, SPinvB},
	SPinvB: {SprPinv, 1, 6, ActionNone, SPinvC},
	SPinvC: {SprPinv, 2, 6, ActionNone, SPinvD},
	SPinvD: {SprPinv, 3, 6, ActionNone, SPinv},
	SPins:  {SprPins, 0, 6, ActionNone, SPinsB},
	SPinsB: {SprPins, 1, 6, ActionNone, SPinsC},
	SPinsC: {SprPins, 2, 6, ActionNone, SPinsD},
	SPinsD: {SprPins, 3, 6, ActionNone, SPins},
	SSoul:  {SprSoul, 0, 6, ActionNone, SSoulB},
	SSoulB: {SprSoul, 1, 6, ActionNone, SSoulC},
	SSoulC: {SprSoul, 2, 6, ActionNone, SSoulD},
	SSoulD: {SprSoul, 3, 6, ActionNone, SSoul},
}
